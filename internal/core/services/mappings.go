package services

// The curated-name resolution rules below are deliberately simple: the
// table is a flat immutable literal loaded at start-up, and the only
// special case is the docker-based GitHub server. Everything else is
// assumed to be launched through the generic package runner.

// packageRunner launches npm packages without a local install.
const packageRunner = "npx"

// githubServerPackage is the one mapping that is not an npm package.
const githubServerPackage = "github-mcp-server"

// githubServerImage is the container image for the docker-based GitHub server.
const githubServerImage = "ghcr.io/github/github-mcp-server"

// curatedPackages maps curated connector names to their real-world package
// identifiers. Names absent from this table are skipped entirely; unknown
// mappings are never fabricated.
var curatedPackages = map[string]string{
	// Official ModelContextProtocol servers
	"filesystem-mcp":          "@modelcontextprotocol/server-filesystem",
	"memory-mcp":              "@modelcontextprotocol/server-memory",
	"brave-search-mcp":        "@modelcontextprotocol/server-brave-search",
	"slack-mcp":               "@modelcontextprotocol/server-slack",
	"puppeteer-mcp":           "@modelcontextprotocol/server-puppeteer",
	"postgres-mcp":            "@modelcontextprotocol/server-postgres",
	"sqlite-mcp":              "@modelcontextprotocol/server-sqlite",
	"git-mcp":                 "@modelcontextprotocol/server-git",
	"everything-mcp":          "@modelcontextprotocol/server-everything",
	"fetch-mcp":               "@modelcontextprotocol/server-fetch",
	"inspector-mcp":           "@modelcontextprotocol/inspector",
	"sequential-thinking-mcp": "@modelcontextprotocol/server-sequential-thinking",

	// Third-party production servers
	"azure-mcp":       "@azure/azure-mcp",
	"playwright-mcp":  "@microsoft/mcp-playwright",
	"markitdown-mcp":  "@microsoft/mcp-markitdown",
	"docker-mcp":      "@docker/mcp-server",
	"supabase-mcp":    "@supabase/mcp-server-supabase",
	"browserbase-mcp": "@browserbase/mcp-server-browserbase",
	"elevenlabs-mcp":  "@elevenlabs/elevenlabs-mcp",
	"sanity-mcp":      "@sanity-io/sanity-mcp-server",
	"dataforseo-mcp":  "@dataforseo/mcp-server-typescript",
	"chroma-mcp":      "@chroma-core/chroma-mcp",
	"apidog-mcp":      "@apidog/mcp-server",

	// Cloud and infrastructure
	"github-mcp":       githubServerPackage, // docker-based
	"aws-mcp":          "@aws/aws-mcp",
	"gcp-mcp":          "@google-cloud/mcp-server",
	"aws-bedrock-mcp":  "@aws/bedrock-mcp-server",
	"digitalocean-mcp": "@digitalocean/mcp-server",
	"kubernetes-mcp":   "@kubernetes/mcp-server",
	"terraform-mcp":    "@hashicorp/terraform-mcp-server",
	"helm-mcp":         "@helm/mcp-server",
	"nomad-mcp":        "@hashicorp/nomad-mcp-server",
	"consul-mcp":       "@hashicorp/consul-mcp-server",
	"vault-mcp":        "@hashicorp/vault-mcp-server",
	"pulumi-mcp":       "@pulumi/mcp-server",

	// Databases
	"mongodb-mcp":       "@mongodb/mcp-server",
	"redis-mcp":         "@redis/mcp-server",
	"elasticsearch-mcp": "@elastic/mcp-server",
	"cassandra-mcp":     "@cassandra/mcp-server",
	"dynamodb-mcp":      "@aws/dynamodb-mcp-server",
	"couchdb-mcp":       "@couchdb/mcp-server",
	"influxdb-mcp":      "@influxdata/mcp-server",
	"neo4j-mcp":         "@neo4j/mcp-server",
	"mysql-mcp":         "@mysql/mcp-server",
	"mariadb-mcp":       "@mariadb/mcp-server",
	"solr-mcp":          "@apache/solr-mcp-server",

	// Communication and social
	"discord-mcp":   "@discord/mcp-server",
	"telegram-mcp":  "@telegram/mcp-server",
	"teams-mcp":     "@microsoft/teams-mcp-server",
	"webex-mcp":     "@cisco/webex-mcp-server",
	"zoom-mcp":      "@zoom/mcp-server",
	"whatsapp-mcp":  "@whatsapp/mcp-server",
	"twitter-mcp":   "@twitter/mcp-server",
	"linkedin-mcp":  "@linkedin/mcp-server",
	"facebook-mcp":  "@facebook/mcp-server",
	"instagram-mcp": "@instagram/mcp-server",
	"pinterest-mcp": "@pinterest/mcp-server",
	"reddit-mcp":    "@reddit/mcp-server",
	"medium-mcp":    "@medium/mcp-server",
	"youtube-mcp":   "@youtube/mcp-server",
	"tiktok-mcp":    "@tiktok/mcp-server",

	// AI and ML
	"openai-mcp":      "@openai/mcp-server",
	"huggingface-mcp": "@huggingface/mcp-server",
	"langchain-mcp":   "@langchain/mcp-server",
	"cohere-mcp":      "@cohere/mcp-server",
	"anthropic-mcp":   "@anthropic/mcp-server",
	"google-ai-mcp":   "@google/ai-mcp-server",
	"pytorch-mcp":     "@pytorch/mcp-server",
	"tensorflow-mcp":  "@tensorflow/mcp-server",
	"mlflow-mcp":      "@mlflow/mcp-server",
	"wandb-mcp":       "@wandb/mcp-server",
	"kubeflow-mcp":    "@kubeflow/mcp-server",

	// Development and project management
	"jira-mcp":      "@atlassian/jira-mcp-server",
	"gitlab-mcp":    "@gitlab/mcp-server",
	"bitbucket-mcp": "@atlassian/bitbucket-mcp-server",
	"linear-mcp":    "@linear/mcp-server",
	"asana-mcp":     "@asana/mcp-server",
	"trello-mcp":    "@trello/mcp-server",
	"monday-mcp":    "@monday/mcp-server",
	"clickup-mcp":   "@clickup/mcp-server",

	// CMS and content
	"notion-mcp":      "@notion/mcp-server",
	"contentful-mcp":  "@contentful/mcp-server",
	"wordpress-mcp":   "@wordpress/mcp-server",
	"drupal-mcp":      "@drupal/mcp-server",
	"joomla-mcp":      "@joomla/mcp-server",
	"ghost-mcp":       "@ghost/mcp-server",
	"strapi-mcp":      "@strapi/mcp-server",
	"woocommerce-mcp": "@woocommerce/mcp-server",
	"magento-mcp":     "@magento/mcp-server",
	"shopify-mcp":     "@shopify/mcp-server",

	// Search and analytics
	"bing-search-mcp":   "@microsoft/bing-search-mcp-server",
	"google-search-mcp": "@google/search-mcp-server",
	"duckduckgo-mcp":    "@duckduckgo/mcp-server",
	"sphinx-search-mcp": "@sphinx/search-mcp-server",
	"grafana-mcp":       "@grafana/mcp-server",
	"datadog-mcp":       "@datadog/mcp-server",
	"newrelic-mcp":      "@newrelic/mcp-server",
	"sentry-mcp":        "@sentry/mcp-server",
	"prometheus-mcp":    "@prometheus/mcp-server",
	"splunk-mcp":        "@splunk/mcp-server",
	"logzio-mcp":        "@logz/mcp-server",

	// E-commerce and payments
	"stripe-mcp": "@stripe/mcp-server",
	"paypal-mcp": "@paypal/mcp-server",
	"square-mcp": "@square/mcp-server",

	// Email and marketing
	"email-mcp":     "@email/mcp-server",
	"sendgrid-mcp":  "@sendgrid/mcp-server",
	"mailchimp-mcp": "@mailchimp/mcp-server",
	"twilio-mcp":    "@twilio/mcp-server",

	// Design and collaboration
	"figma-mcp":    "@figma/mcp-server",
	"miro-mcp":     "@miro/mcp-server",
	"invision-mcp": "@invision/mcp-server",

	// System utilities
	"shell-mcp":   "@shell/mcp-server",
	"ssh-mcp":     "@ssh/mcp-server",
	"ftp-mcp":     "@ftp/mcp-server",
	"rsync-mcp":   "@rsync/mcp-server",
	"tar-mcp":     "@tar/mcp-server",
	"zip-mcp":     "@zip/mcp-server",
	"systemd-mcp": "@systemd/mcp-server",
	"nginx-mcp":   "@nginx/mcp-server",
	"cron-mcp":    "@cron/mcp-server",
	"logs-mcp":    "@logs/mcp-server",

	// Security
	"1password-mcp": "@1password/mcp-server",
	"bitwarden-mcp": "@bitwarden/mcp-server",
	"lastpass-mcp":  "@lastpass/mcp-server",
	"auth0-mcp":     "@auth0/mcp-server",
	"okta-mcp":      "@okta/mcp-server",
	"cyberark-mcp":  "@cyberark/mcp-server",

	// Web frameworks
	"django-mcp":  "@django/mcp-server",
	"flask-mcp":   "@flask/mcp-server",
	"express-mcp": "@express/mcp-server",
	"fastapi-mcp": "@fastapi/mcp-server",

	// API and integration
	"graphql-mcp":     "@graphql/mcp-server",
	"grpc-mcp":        "@grpc/mcp-server",
	"restapi-mcp":     "@restapi/mcp-server",
	"http-mcp":        "@http/mcp-server",
	"websocket-mcp":   "@websocket/mcp-server",
	"webscraping-mcp": "@webscraping/mcp-server",

	// Reference and information
	"wikipedia-mcp": "@wikipedia/mcp-server",
	"context7":      "@context7/mcp-server",

	// Apache projects and misc
	"apache-mcp":      "@apache/mcp-server",
	"algolia-mcp":     "@algolia/mcp-server",
	"elastic-apm-mcp": "@elastic/apm-mcp-server",
}

// CuratedPackage resolves a curated connector name to its package
// identifier. The second return value is false when the name is unmapped.
func CuratedPackage(name string) (string, bool) {
	pkg, ok := curatedPackages[name]
	return pkg, ok
}

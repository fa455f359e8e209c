package cli

import "github.com/MakeNowJust/heredoc"

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		Every configuration key can be set from the environment. Prefix the
		key with SCREENER_ and replace dots with underscores.

		SCREENER_LOG_LEVEL: log level of the server, one of debug, info, warn or error.

		SCREENER_SERVICE_PORT: port the HTTP server listens on.

		SCREENER_DATASET_STOCKS, SCREENER_DATASET_PRODUCTS, SCREENER_DATASET_TASKS:
		paths of the dataset files. The bundled sample data is served when unset.

		SCREENER_RELOAD_INTERVAL: reload every dataset on this interval, e.g. 5m.

		SCREENER_CLIENT_HOST: address of the server the client commands talk to.

		NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.
	`),
}

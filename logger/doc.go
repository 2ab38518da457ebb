// Package logger wraps zerolog with the SDK's logging conventions:
// component-tagged sub-loggers, structured field helpers, and environment
// driven configuration (WORDCAB_LOG_*).
//
// Clients constructed without an explicit logger use logger.Nop, so the
// library stays quiet unless the consumer asks for output:
//
//	log := logger.NewFromEnv("wordcab")
//	client, err := wordcab.NewClient(wordcab.WithLogger(log))
package logger

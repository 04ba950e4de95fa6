package cmd

// Config carries every runtime setting the application reads from the
// environment. KafkaHost may be empty, in which case event publishing is
// disabled.
type Config struct {
	AppEnv                 string
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	LowStockThreshold      int
}

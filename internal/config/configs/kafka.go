package configs

// Kafka configures the dead-letter topic for impressions that could not be
// recorded. The sink is disabled when Brokers is empty and lost
// impressions are only logged.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"DEAD_LETTER_TOPIC" envDefault:"adgate.impressions.dead-letter"`
}

// Enabled reports whether a dead-letter topic is configured.
func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0
}

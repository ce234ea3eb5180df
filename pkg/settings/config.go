package settings

type Config struct {
	Queue  Queue  `mapstructure:"queue"`
	Logger Logger `mapstructure:"logger"`
	Demo   Demo   `mapstructure:"demo"`
}

// Queue is the configuration for a bounded queue
type Queue struct {
	Capacity int `mapstructure:"capacity"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}

// Demo is the configuration for the queue demo driver
type Demo struct {
	PushCount  int `mapstructure:"push_count"`
	PopCount   int `mapstructure:"pop_count"`
	StartDelay int `mapstructure:"start_delay"` // Milliseconds
}

package config

import "os"

func IsDebug() bool {
	return os.Getenv("RESORT_DEBUG") == "1"
}

package constants

import "os"

func GetExportDir() string {
	path := os.Getenv("EXPORT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetDbEndpoint() string {
	endpoint := os.Getenv("DB_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

const ExportTable = "tonality-exports"

const DefaultTempo = 120

const TicksPerQuarter = 96

const DefaultVelocity = 100

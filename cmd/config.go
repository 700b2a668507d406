package cmd

type Config struct {
	Mode               string
	HTTPPort           string
	BackendURL         string
	BackendToken       string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	OrderCount         string
	SubmitMinDelayMs   string
	SubmitMaxDelayMs   string
	ProgressionDelayMs string
	ReseedCronSchedule string
	ReseedPurgeFirst   string
}

// Package config provides configuration management for the proto manager.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file. Defaults come from the `default` struct tags of each partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Proto: source root lookup (PROTO_PATH, proto_path.cfg, fallback), extension, encoding,
//     identifier bound and manifest locations
//   - Output: free identifier report file and export directory
//   - Storage: S3/MinIO credentials and bucket settings for exports
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Proto.MaxPID)
package config

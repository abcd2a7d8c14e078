package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func logLevelFlag(v *viper.Viper) string {
	return v.GetString("log.level")
}

func addLogLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-level", "info", "log level")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindEnv("log.level", "LOG_LEVEL")
}

func logFormatFlag(v *viper.Viper) string {
	return v.GetString("log.format")
}

func addLogFormatFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-format", "json", "log format")
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindEnv("log.format", "LOG_FORMAT")
}

func outputFlag(v *viper.Viper) string {
	return v.GetString("output")
}

func addOutputFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("output", "", "Write to the given file instead of stdout")
	_ = v.BindPFlag("output", flags.Lookup("output"))
}

func storeNameFlag(v *viper.Viper) string {
	return v.GetString("store")
}

func addStoreNameFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("store", "", "Additionally store the skeleton in the library under this name")
	_ = v.BindPFlag("store", flags.Lookup("store"))
}

func addressFlag(v *viper.Viper) string {
	return v.GetString("address")
}

func addAddressFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("address", ":8080", "Address to bind to (host:port)")
	_ = v.BindPFlag("address", flags.Lookup("address"))
	_ = v.BindEnv("address", "SKELETONIO_ADDRESS")
}

func basePathFlag(v *viper.Viper) string {
	return v.GetString("base_path")
}

func addBasePathFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("base-path", "/skeletonio", "Base path to export the webserver on")
	_ = v.BindPFlag("base_path", flags.Lookup("base-path"))
	_ = v.BindEnv("base_path", "SKELETONIO_BASE_PATH")
}

func baseDirFlag(v *viper.Viper) string {
	return v.GetString("base_dir")
}

func addBaseDirFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("base-dir", "/var/lib/skeletonio", "Where to put my data")
	_ = v.BindPFlag("base_dir", flags.Lookup("base-dir"))
	_ = v.BindEnv("base_dir", "SKELETONIO_BASE_DIR")
}

func historyLimitFlag(v *viper.Viper) int {
	return v.GetInt("history.limit")
}

func addHistoryLimitFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int("history-limit", 2, "Number of backup versions to keep per skeleton")
	_ = v.BindPFlag("history.limit", flags.Lookup("history-limit"))
	_ = v.BindEnv("history.limit", "SKELETONIO_HISTORY_LIMIT")
}

func storageTypeFlag(v *viper.Viper) string {
	return v.GetString("storage.type")
}

func addStorageTypeFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-type", "filesystem", "Storage backend to use (filesystem, blob)")
	_ = v.BindPFlag("storage.type", flags.Lookup("storage-type"))
	_ = v.BindEnv("storage.type", "SKELETONIO_STORAGE_TYPE")
}

func storageBlobBucketFlag(v *viper.Viper) string {
	return v.GetString("storage.blob.bucket")
}

func addStorageBlobBucketFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-blob-bucket", "", "Bucket URL for blob storage (gs://, s3://, azblob://)")
	_ = v.BindPFlag("storage.blob.bucket", flags.Lookup("storage-blob-bucket"))
	_ = v.BindEnv("storage.blob.bucket", "SKELETONIO_STORAGE_BLOB_BUCKET")
}

func storageBlobPrefixFlag(v *viper.Viper) string {
	return v.GetString("storage.blob.prefix")
}

func addStorageBlobPrefixFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("storage-blob-prefix", "", "Optional key prefix for blob storage")
	_ = v.BindPFlag("storage.blob.prefix", flags.Lookup("storage-blob-prefix"))
	_ = v.BindEnv("storage.blob.prefix", "SKELETONIO_STORAGE_BLOB_PREFIX")
}

func concurrencyFlag(v *viper.Viper) int {
	return v.GetInt("concurrency")
}

func addConcurrencyFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Int("concurrency", 4, "Number of files to verify in parallel")
	_ = v.BindPFlag("concurrency", flags.Lookup("concurrency"))
}

func serviceHealthzEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.healthz.enabled")
}

func addServiceHealthzEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-healthz-enabled", false, "Enable healthz service")
	_ = v.BindPFlag("service.healthz.enabled", flags.Lookup("service-healthz-enabled"))
}

func servicePrometheusEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.prometheus.enabled")
}

func addServicePrometheusEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-prometheus-enabled", false, "Enable prometheus service")
	_ = v.BindPFlag("service.prometheus.enabled", flags.Lookup("service-prometheus-enabled"))
}

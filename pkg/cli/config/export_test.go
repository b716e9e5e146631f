package config

// NewArchiveForTest creates an Archive config for testing purposes
func NewArchiveForTest(configPath, baseURL string) *Archive {
	return &Archive{
		configPath: configPath,
		baseURL:    baseURL,
	}
}

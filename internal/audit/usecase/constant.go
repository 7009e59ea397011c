package usecase

const (
	defaultTemperature      = 0.3
	defaultAdsTemperature   = 0.7
	defaultSnapshotMaxChars = 6000

	scanDateFormat = "2006-01-02"
)

package extract

const (
	NameFence   = "fence"
	NameScanner = "scan"

	fenceJSON = "```json"
	fence     = "```"
)

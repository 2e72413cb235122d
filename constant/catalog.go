package constant

// Dataset resource layout: <base>/<category><DatasetSuffix>.
const (
	DefaultDataBase = "/data"
	DatasetSuffix   = ".full.json"
)

// Internet Archive endpoints used by the source resolver.
const (
	ArchiveDetailsMarker = "archive.org/details/"
	ArchiveSearchMarker  = "archive.org/search"
	ArchiveEmbedTemplate = "https://archive.org/embed/%s"
)

// LatestCount is the number of items shown per category on the home page.
const LatestCount = 12

// CardTagCount is the number of tags previewed on a grid card.
const CardTagCount = 3

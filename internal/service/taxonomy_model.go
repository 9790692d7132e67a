package service

// CategoryEntry is one category as published in the taxonomy map.
type CategoryEntry struct {
	ID          int64
	Name        string
	SortOrder   int
	ReportClass string
}

// GroupEntry is one group with its ordered categories.
type GroupEntry struct {
	ID         int64
	Name       string
	SortOrder  int
	Categories []CategoryEntry
}

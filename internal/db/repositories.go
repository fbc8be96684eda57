package db

// Repositories provides access to all database repositories
type Repositories struct {
	Channels        *ChannelRepository
	Media           *MediaRepository
	ScheduleEntries *ScheduleEntryRepository
	Blocks          *BlockRepository
	BlockItems      *BlockItemRepository
	Settings        *SettingsRepository
}

// NewRepositories creates a new repository collection
func NewRepositories(db *DB) *Repositories {
	return &Repositories{
		Channels:        NewChannelRepository(db),
		Media:           NewMediaRepository(db),
		ScheduleEntries: NewScheduleEntryRepository(db),
		Blocks:          NewBlockRepository(db),
		BlockItems:      NewBlockItemRepository(db),
		Settings:        NewSettingsRepository(db),
	}
}

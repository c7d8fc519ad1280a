package database

// migration is one forward-only schema step. Versions start at 1 and must
// be listed in order with no gaps.
type migration struct {
	version int
	name    string
	sql     string
}

// migrations lists every almanac schema step in the order Migrate applies
// them. Never edit an applied step; append a new one.
var migrations = []migration{
	{1, "almanac_days", migrationV1AlmanacDays},
	{2, "almanac_indexes", migrationV2AlmanacIndexes},
}

// LatestSchemaVersion is the schema version a fully migrated almanac has.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// migrationV1AlmanacDays creates the almanac table. One row per Gregorian
// day; every Javanese field is derived from the date, so the table can be
// dropped and regenerated at any time.
const migrationV1AlmanacDays = `
CREATE TABLE IF NOT EXISTS almanac_days (
    -- Gregorian calendar day, YYYY-MM-DD
    date TEXT PRIMARY KEY,
    weekday INTEGER NOT NULL CHECK (weekday BETWEEN 0 AND 6),

    dina TEXT NOT NULL,
    dina_index INTEGER NOT NULL CHECK (dina_index BETWEEN 0 AND 6),
    pasaran TEXT NOT NULL,
    pasaran_index INTEGER NOT NULL CHECK (pasaran_index BETWEEN 0 AND 4),
    neptu INTEGER NOT NULL CHECK (neptu BETWEEN 7 AND 18),

    -- Javanese date; month is 0 for Sura through 11 for Besar
    day INTEGER NOT NULL CHECK (day BETWEEN 1 AND 30),
    month INTEGER NOT NULL CHECK (month BETWEEN 0 AND 11),
    wulan TEXT NOT NULL,
    year INTEGER NOT NULL,
    taun TEXT NOT NULL,
    kabisat INTEGER NOT NULL DEFAULT 0,

    wuku TEXT NOT NULL,
    wuku_index INTEGER NOT NULL CHECK (wuku_index BETWEEN 0 AND 29),
    mongso TEXT NOT NULL,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// migrationV2AlmanacIndexes adds the lookups used by ListByWeton and by
// Javanese date searches.
const migrationV2AlmanacIndexes = `
CREATE INDEX IF NOT EXISTS idx_almanac_days_weton
    ON almanac_days(dina_index, pasaran_index);

CREATE INDEX IF NOT EXISTS idx_almanac_days_javanese
    ON almanac_days(year, month, day);
`

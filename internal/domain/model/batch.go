package model

import "time"

// StatBatch is one scraped per-statistic table for one team, submitted by
// the scraping layer. BatchID provides idempotency across scrape retries.
type StatBatch struct {
	BatchID   string       // unique id for idempotency
	Column    string       // statistic column this table covers
	Team      string       // team label as reported by the statistics source
	Records   []StatRecord // one record per scraped player row
	ScrapedAt time.Time
}

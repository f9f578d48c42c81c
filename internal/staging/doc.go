// Package staging implements the filesystem staging area between the
// generator and the transformer.
//
// Each generator run writes one JSON batch file named by a second-granularity
// UTC timestamp (stock_data_YYYYMMDD_HHMMSS.json). Files accumulate across
// runs and are all re-read by every transformer run; nothing here prunes or
// marks them processed. Same-second writes overwrite, last write wins.
package staging

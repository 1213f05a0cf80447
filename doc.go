// Package stash keeps track of the lots of assets a person owns and values
// them against market prices.
//
// The core functionalities include:
//   - Ledger Management: a Stash maps unique lot ids to Lots. Ids are
//     allocated from a monotonic counter and never reused, even after the lot
//     they named has been removed.
//   - Filtering: AssetFilter and HostFilter select lots by symbol or by
//     custody host, and are always combined with a logical AND.
//   - Valuation: a Stash is valued against a PriceMap, all or nothing. A lot
//     whose asset has no price fails the whole valuation with a
//     MissingPriceError.
//   - Data Persistence: the whole Stash is written as a single JSON document
//     on every mutation, and a missing document reads as an empty Stash.
//
// Market prices themselves are scraped from a quote page by the quotes
// package, and this package serves as the foundational logic for the `stx`
// command-line tool.
package stash

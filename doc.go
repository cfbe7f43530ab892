// Package stocks implements event-sourced position accounting for a stock
// portfolio. The ledger of each security is the append-only list of its buy
// and sell trades; held quantity, average cost basis and realized profit are
// never stored, they are reconstructed by replaying the ledger up to a
// reference instant.
//
// The core functionalities include:
//   - Trade Recording: validated buy and sell events, ordered by timestamp,
//     with sell-side checks against the position as of the trade's instant.
//   - Point-in-Time Queries: held quantity and average cost immediately
//     before any reference datetime, split-adjusted for that datetime.
//   - Stock Splits: retroactive adjustments attached to earlier trades, so
//     recorded quantities and prices stay auditable while queries dated
//     after the split see the adjusted position.
//   - Profit Aggregation: month-by-month realized profit and sale proceeds,
//     with the Brazilian capital-gains tax rule applied per month.
//   - Data Persistence: a canonical JSON document whose decode/encode round
//     trip is byte-for-byte reproducible.
//
// This package serves as the foundational logic for the `stk` command-line
// tool; live quotes come from the sibling mfinance package.
package stocks

// Package sellerbook provides the bookkeeping logic for a small seller:
// recording purchases of equipment and sales of products, keeping the
// on-hand stock of every asset consistent with the recorded transactions,
// comparing monthly income against a goal, and computing sale prices from
// material costs, fees and a profit target.
//
// The core functionalities include:
//   - Stock reconciliation: every insert, amendment or removal of a
//     transaction produces the asset stock mutations required to keep the
//     ledger and the inventory in agreement, without ever letting stock go
//     negative.
//   - Price calculation: a pure computation deriving a sale price from a
//     material-cost basis, fees expressed as a percentage of the final
//     price, and a profit target (flat or percent of cost).
//   - Period window maintenance: a contiguous run of monthly accounting
//     periods is kept alive from the latest known period through a fixed
//     number of months into the future.
//   - Data persistence: encoding and decoding the whole book to and from a
//     human-readable, version-controllable JSONL file.
//
// All monetary values are integer minor units (see Money) and all
// operations are pure computations over value snapshots; persistence is
// the thin Book layer on top. This package is the foundational logic for
// the `sbk` command-line tool.
package sellerbook

// Package wealth turns a flat, per-asset position feed into grouped,
// multi-currency, sorted and percentage-allocated views of a portfolio.
//
// The core functionalities include:
//   - Grouping: CalculateHoldings partitions positions on a GroupBy axis and
//     accumulates sub-totals and grand totals in every currency perspective
//     (Portfolio, Base and Trade), without ever dropping the value of a hidden
//     position.
//   - Sorting: SortPositions orders a group on a SortKey, always listing cash
//     related positions last.
//   - Allocation: TransformToAllocationSlices and NewAllocation break the
//     market value down into percentage slices for charts, with manual assets
//     and an FX rescale for display.
//
// Every function of the engine is a pure function of its inputs: results are
// freshly built values and inputs are never modified. Reading feeds, FX rates
// and manual assets from json is done by the Decode* and Load* helpers.
package wealth

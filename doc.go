// Package sukuk computes the figures of a personal fixed-income portfolio
// dashboard: sukuk and similar instruments bought on several platforms, their
// scheduled cashflows, and the cash kept on each platform.
//
// The engine is a set of pure functions over in-memory records:
//   - Filter narrows investments, cash transactions and cashflows to a
//     platform and a range of start dates.
//   - TotalCash and CashByPlatform reduce cash transactions to balances.
//   - PortfolioValue, DurationMonths and friends value the positions.
//   - CalculateAPR, ActiveAPR and WeightedAPR compute annualized returns,
//     weighted by face value. PortfolioROI relates received profit to the
//     invested capital.
//   - IsLate and IsDefaulted classify investments from their unreceived
//     cashflows, relative to an explicit reference day.
//   - PlatformDistribution and its variants break the portfolio down per
//     platform, by value or by count.
//
// CalculateDashboardMetrics assembles all of them into a DashboardMetrics
// value. Nothing here reads the clock, touches the disk or fails: missing data
// degrades to zero or empty results.
//
// Amounts are exact decimals (see Money); only rates and percentages are
// floating point (see Percent).
package sukuk

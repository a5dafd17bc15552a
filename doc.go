// Package bilancio provides the aggregation and valuation engine behind a
// personal-finance tracker: accounts, dated multi-currency transactions,
// recurring obligations and investment valuations are turned into balances,
// cashflow breakdowns, wealth snapshots and performance series.
//
// The core functionalities include:
//   - Ledger Math: sign-normalised amounts and running balances over an
//     immutable, chronologically sorted set of transactions.
//   - Valuation: conversion of amounts between currencies using date-indexed
//     exchange rates, with a documented identity-rate fallback when a rate
//     cannot be resolved.
//   - Cashflow Analytics: monthly and yearly income/expense/savings
//     decomposition for the liquidity accounts.
//   - Wealth Snapshots: point-in-time, per-account valuations at year end
//     and year-over-year evolution.
//   - Investment Analytics: contributed capital, net gain, ROI and period
//     gain series per investment, with currency-aware group roll-ups.
//   - Recurrence Reconciliation: matching of planned recurring obligations
//     to actual postings, producing paid/pending/overdue status.
//
// All engine functions are pure transformations of in-memory collections:
// they take the reference date and reporting currency explicitly, never read
// ambient state, and never mutate their inputs. The only external
// collaborator is the RateProvider, a network-bound exchange-rate lookup.
//
// This package serves as the foundational logic for the `bilancio`
// command-line tool, which loads a JSONL snapshot of the collections and
// renders the engine's reports.
package bilancio

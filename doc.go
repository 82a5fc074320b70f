// Package robstat is your in-memory toolkit for robust statistical
// inference — from outlier-resistant point estimators to bootstrap
// confidence intervals and hypothesis tests.
//
// 🚀 What is robstat?
//
//	A modern, deterministic library that brings together:
//		• Robust location: trimmed & Winsorized means, MOM, M-estimators, tau
//		• Robust scale: MAD, ideal fourths, percentage-bend & biweight midvariance
//		• A generic bootstrap engine: reproducible resampling, percentile and
//		  percentile-t confidence intervals, tie-aware two-sided p-values
//		• Robust correlation: Pearson & percentage-bend, paired-bootstrap CIs
//		• Robust regression: Theil–Sen slopes, mediation (indirect-effect) CIs
//
// ✨ Why choose robstat?
//
//   - Reproducible — every resampling routine is governed by an explicit
//     seed policy; the same seed always yields the same interval
//   - Rock-solid guarantees — sentinel errors, no panics on user input,
//     degenerate samples rejected loudly instead of returning quiet NaNs
//   - Pluggable — any estimator is a plain function value; the bootstrap
//     engine is polymorphic over what it resamples
//
// Under the hood, everything is organized under five subpackages:
//
//	robust/    — closed-form robust location & scale estimators
//	bootstrap/ — the resampling inference engine (the core)
//	infer/     — one-sample confidence intervals & tests built on both
//	correlate/ — correlation estimators and paired-bootstrap inference
//	regress/   — Theil–Sen regression and mediation analysis
//
// Quick taste:
//
//	dist, _ := bootstrap.Build(data, est, bootstrap.WithFixedSeed(2))
//	ci, _ := bootstrap.PercentileCI(dist, 0.05)
//
// Dive into examples/ for end-to-end scenarios.
package robstat

// Package fpgrowth implements a frequent-pattern miner: given a multiset of
// transactions (each a set of gene-name strings) and a minimum absolute
// support threshold, find every itemset whose support meets the threshold.
//
// The root package depends only on the Miner interface; FPGrowth is the one
// concrete implementation shipped with this module. The core owns
// transaction construction and scoring; the miner owns the tree and the
// candidate enumeration, so an alternate mining strategy can be substituted
// without touching the core.
package fpgrowth

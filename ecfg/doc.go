// Package ecfg implements Extended CFGs (exactly one regex-bodied
// production per variable) and their conversion to Recursive State
// Machines: a named collection of boxes, each box the minimized DFA
// for one variable's regex body. CFGToECFG groups an ordinary CFG's
// productions by head and unions their Regex renderings; ECFGToRSM
// compiles and minimizes each resulting regex into a box.
package ecfg

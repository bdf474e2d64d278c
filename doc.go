// Package rwplugin holds the pieces the RozWorld example plugins are built
// from: a prefixed logger, per-sender chat hook leases, the periodic broadcaster and
// the plugin configuration.
//
// The tutorial itself lives in examples/plugins. Each part is a complete
// plugin that adds one feature to the part before it:
//
//	part1  log on Starting and Stopping
//	part2  the /hello command, answering console, players and bots
//	part3  periodic random broadcasts
//	part4  /hookchat, /unhookchat and the /hooktest question
//	part5  configuration, /broadcast and tidy shutdown
//
// examples/rwdev runs any part against the development host in package
// devhost.
package rwplugin

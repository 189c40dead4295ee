package cli

// RunWithWriter exposes run to tests that assert on status output
var RunWithWriter = run

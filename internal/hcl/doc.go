// Package hcl implements config.Loader for HCL project files:
//
//	sources     = ["layouts"]
//	output      = "build/layouts.json"
//	format      = "json"
//	log_level   = "info"
//	log_format  = "text"
//	breakpoints = { lg = "1280px", md = 1024, sm = "40em" }
//
//	layout "dashboard" {
//	  breakpoints = ["md", "sm"]
//	}
//
// Relative paths are resolved against the directory of the file that
// declares them.
package hcl

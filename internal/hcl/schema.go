package hcl

import "github.com/hashicorp/hcl/v2"

// projectFile is the top-level body of a project file.
type projectFile struct {
	Sources     []string       `hcl:"sources,optional"`
	Layouts     []string       `hcl:"layouts,optional"`
	Output      string         `hcl:"output,optional"`
	Format      string         `hcl:"format,optional"`
	LogLevel    string         `hcl:"log_level,optional"`
	LogFormat   string         `hcl:"log_format,optional"`
	Breakpoints hcl.Expression `hcl:"breakpoints,optional"`
	Overrides   []*layoutBlock `hcl:"layout,block"`
}

// layoutBlock is a `layout "name" {}` block.
type layoutBlock struct {
	Name        string         `hcl:"name,label"`
	Breakpoints hcl.Expression `hcl:"breakpoints,optional"`
}

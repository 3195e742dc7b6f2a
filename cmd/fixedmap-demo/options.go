package main

// Options is the command line of fixedmap-demo, parsed by go-flags.
type Options struct {
	Capacity int      `short:"c" long:"capacity" default:"20" description:"number of slots in the demo maps"`
	Keys     []string `short:"k" long:"key" description:"key to insert, repeatable (default str1..str5)"`
}

func (o *Options) keys() []string {
	if len(o.Keys) > 0 {
		return o.Keys
	}

	return []string{"str1", "str2", "str3", "str4", "str5"}
}

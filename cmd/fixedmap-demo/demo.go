package main

import (
	"fmt"
	"io"

	"github.com/homier/fixedmap"
)

func run(w io.Writer, opts *Options) error {
	if opts.Capacity < 0 {
		return fmt.Errorf("invalid capacity %d", opts.Capacity)
	}

	walkStrings(w, opts.Capacity, opts.keys())
	walkIdentity(w, opts.Capacity)

	return nil
}

// walkStrings fills a string keyed map, then clears, deletes and re-adds.
func walkStrings(w io.Writer, capacity int, keys []string) {
	fm := fixedmap.NewComparable[string, uint32](capacity)

	fill := func() {
		for i, k := range keys {
			if err := fm.Insert(k, uint32(i)); err != nil {
				fmt.Fprintf(w, "Could not add %s: %v\n", k, err)
			}
		}
	}

	fill()

	probe := keys[min(3, len(keys)-1)]
	if v, ok := fm.Get(probe); ok {
		fmt.Fprintf(w, "Got %s %d\n", probe, v)
	} else {
		fmt.Fprintf(w, "Could not get %s\n", probe)
	}

	fmt.Fprintln(w, fm)

	fm.Clear()
	fmt.Fprintln(w, fm)

	fill()
	fm.Delete(probe)
	fmt.Fprintln(w, fm)

	if err := fm.Insert(probe, 20); err != nil {
		fmt.Fprintf(w, "Could not re-add %s: %v\n", probe, err)
	}
	fmt.Fprintln(w, fm)

	err := fm.Insert(probe, 20)
	fmt.Fprintf(w, "Result adding duplicate: %v\n", err)
	fmt.Fprintln(w, fm)
}

// walkIdentity uses pointers as keys, so two equal strings at different
// addresses are different keys.
func walkIdentity(w io.Writer, capacity int) {
	words := []string{"one", "two", "three", "four"}
	values := []string{"ein", "zwei", "drei", "vier"}

	keys := make([]*string, len(words))
	for i := range words {
		keys[i] = &words[i]
	}

	fm := fixedmap.NewComparable(capacity,
		fixedmap.WithKeyEncoder[*string, string](func(dst []byte, k *string) []byte {
			return append(dst, *k...)
		}),
	)

	for i, k := range keys {
		if err := fm.Insert(k, values[i]); err != nil {
			fmt.Fprintf(w, "Could not add %s: %v\n", *k, err)
		}
	}

	fmt.Fprintln(w, fm)

	key := keys[2]
	if v, ok := fm.Get(key); ok {
		fmt.Fprintf(w, "Got %s\n", v)
	} else {
		fmt.Fprintf(w, "Couldn't get value for %s\n", *key)
	}

	if err := fm.Update(key, "update", false); err != nil {
		fmt.Fprintf(w, "Couldn't update %s: %v\n", *key, err)
	}

	if v, ok := fm.Get(key); ok {
		fmt.Fprintf(w, "Got %s\n", v)
	} else {
		fmt.Fprintf(w, "Couldn't get value for %s\n", *key)
	}

	// Same text, different address.
	other := "three"
	if _, ok := fm.Get(&other); !ok {
		fmt.Fprintf(w, "Couldn't get value for a copy of %s\n", other)
	}
}

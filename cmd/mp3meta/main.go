// Command mp3meta prints the metadata and stream properties of MP3
// files. Useful for eyeballing what the library extracts from a given
// file.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	audiometadata "github.com/ddboline/audio-metadata"
)

func main() {
	raw := flag.Bool("raw", false, "print every tag key, not just the common fields")
	strict := flag.Bool("strict", false, "fail on any parsing warning")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mp3meta [flags] <file.mp3> [more files...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	exit := 0
	for _, path := range flag.Args() {
		if err := dump(path, *raw, *strict); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func dump(path string, raw, strict bool) error {
	var opts []audiometadata.Option
	if strict {
		opts = append(opts, audiometadata.WithStrictParsing())
	}

	file, err := audiometadata.Open(path, opts...)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Printf("%s\n", path)
	fmt.Printf("  %s, %d bytes\n", file.Audio, file.Size)
	fmt.Printf("  duration: %s\n", file.Audio.Duration.Round(0))

	if raw {
		keys := make([]string, 0, file.Tags.Len())
		for key := range file.Tags.All() {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("  %-24s %v\n", key, file.Tags.Get(key))
		}
	} else {
		printField("title", file.Tags.Title())
		printField("artist", file.Tags.Artist())
		printField("album", file.Tags.Album())
		printField("date", file.Tags.Date())
		printField("genre", file.Tags.Genre())
		printField("track", file.Tags.TrackNumber())
	}

	for _, pic := range file.Pictures {
		fmt.Printf("  picture: %s, %s, %d bytes\n", pic.Type, pic.MIMEType, len(pic.Data))
	}
	for _, w := range file.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}

	return nil
}

func printField(name, value string) {
	if value != "" {
		fmt.Printf("  %-8s %s\n", name, value)
	}
}

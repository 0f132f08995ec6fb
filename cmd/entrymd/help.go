package main

// usageText is printed for --help and usage errors.
const usageText = `entrymd converts journal-entry content between HTML and Markdown.

Usage:
  entrymd [flags] <input> [output]

Use - as the input to read stdin; stdin output defaults to stdout.
The conversion direction is taken from --to, the config file, the input
file extension (.html/.htm vs .md/.markdown), or content sniffing, in
that order.

Flags:
      --to string        conversion direction: md, html, or auto
  -o, --output string    output file path
  -c, --config string    config file path or name
      --truncate int     cap Markdown output at N characters
  -q, --quiet            suppress non-error output
  -v, --verbose          verbose diagnostics on stderr
      --version          print version and exit
  -h, --help             print usage and exit

Examples:
  entrymd entry.html                 # writes entry.md
  entrymd notes.md notes.html        # explicit output path
  cat entry.html | entrymd --to md - # stdin to stdout
`

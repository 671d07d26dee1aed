package navigator

// helpText is the operator command guide, rendered through glamour.
const helpText = `# Commands

| Input | Effect |
|-------|--------|
| *number* | select the item with that index |
| ` + "`b`" + ` | up one level |
| ` + "`m`" + ` | back to the root menu (re-reads the server) |
| ` + "`q`" + ` | quit |
| ` + "`f <expr>`" + ` | filter an entry list, e.g. ` + "`f kind == \"DataPoint\"`" + ` |
| ` + "`f`" + ` | clear the filter |
| ` + "`?`" + ` | this guide |

Inside a data point: ` + "`r`" + ` re-reads, ` + "`w`" + ` writes a new value,
` + "`b`" + ` goes back. Filter expressions see ` + "`name`" + `, ` + "`kind`" + `,
` + "`path`" + ` and ` + "`depth`" + `.
`

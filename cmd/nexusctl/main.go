package main

import (
	"io"

	"github.com/preston-bernstein/nexus-data-service/internal/cli"
)

const appVersion = "dev"

func main() {
	newMain(nil, nil, nil).Run()
}

func newMain(out, errOut io.Writer, connect cli.ConnectFunc) cli.Main {
	return cli.Main{
		Name:        "nexusctl",
		Description: "Read and edit Nexus clubs, news and features",
		Version:     appVersion,
		Commands: []cli.Command{
			newClubsCommand(),
			newNewsCommand(),
			newFeaturesCommand(),
			newLoginCommand(),
			newLogoutCommand(),
			newDumpCommand(),
		},
		Connect: connect,
		Out:     out,
		Err:     errOut,
	}
}

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sourcecd/keypairgen/internal/server"
)

func TestServerCmdArgs(t *testing.T) {
	var config server.ConfigArgs
	// set some args for cmdline check
	os.Args = append(os.Args, "-a", "localhost:8181")
	os.Args = append(os.Args, "-l", "debug")
	os.Args = append(os.Args, "-k", "seckey")

	servFlags(&config)

	require.Equal(t, "localhost:8181", config.ServerAddr)
	require.Equal(t, "debug", config.Loglevel)
	require.Equal(t, "seckey", config.KeyEnc)
}

func TestServerEnvArgs(t *testing.T) {
	config := server.ConfigArgs{ServerAddr: "localhost:8080", Loglevel: "info"}
	t.Setenv("ADDRESS", "localhost:9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("KEY", "seckey2")

	servEnv(&config)

	require.Equal(t, "localhost:9090", config.ServerAddr)
	require.Equal(t, "warn", config.Loglevel)
	require.Equal(t, "seckey2", config.KeyEnc)
}

func TestServerEnvBadAddress(t *testing.T) {
	config := server.ConfigArgs{ServerAddr: "localhost:8080"}
	t.Setenv("ADDRESS", "no-port")

	servEnv(&config)

	require.Equal(t, "localhost:8080", config.ServerAddr)
}

func TestBuildOpts(t *testing.T) {
	expString := `Build version: 1
Build date: 1970year
Build commit: N/A
`
	buildVersion = "1"
	buildDate = "1970year"
	buildCommit = ""

	var buf bytes.Buffer
	printBuildFlags(&buf)
	require.Equal(t, expString, buf.String())
}

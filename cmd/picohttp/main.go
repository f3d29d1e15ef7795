package main

import (
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/indigo-web/picohttp/config"
	"gopkg.in/alecthomas/kingpin.v2"
	"k8s.io/klog/v2"
)

var (
	input        = kingpin.Flag("input", "File to read the raw request from, - for stdin").Short('i').Default("-").Envar("PICOHTTP_INPUT").String()
	params       = kingpin.Flag("param", "Name of a parameter to look up, may be repeated").Short('p').Envar("PICOHTTP_PARAMS").Strings()
	legacyLookup = kingpin.Flag("legacy-lookup", "Delimit parameter values by whitespaces too, reporting empty ones as absent").Default("false").Envar("PICOHTTP_LEGACY_LOOKUP").Bool()
	fixNewlines  = kingpin.Flag("crlf", "Turn bare LF line terminators of the input into CRLF").Default("false").Envar("PICOHTTP_CRLF").Bool()
	maxURI       = kingpin.Flag("max-uri", "Capacity of the request URI buffer").Default("256").Envar("PICOHTTP_MAX_URI").Int()
	maxHeaders   = kingpin.Flag("max-headers", "Capacity of the headers block buffer").Default("1024").Envar("PICOHTTP_MAX_HEADERS").Int()
	maxBody      = kingpin.Flag("max-body", "Capacity of the body buffer, longer bodies are truncated").Default("1024").Envar("PICOHTTP_MAX_BODY").Int()
	maxParam     = kingpin.Flag("max-param", "Capacity of the decoded parameter value buffer").Default("256").Envar("PICOHTTP_MAX_PARAM").Int()
	replyLength  = kingpin.Flag("reply-length", "Content-Length of the response head to build").Default("0").Envar("PICOHTTP_REPLY_LENGTH").Uint32()
	peer         = kingpin.Flag("peer", "IPv4 address of the remote peer, octets may be hex with 0x prefix").Envar("PICOHTTP_PEER").String()
	verbosity    = kingpin.Flag("verbosity", "Logs verbosity level").Short('v').Default("0").Envar("PICOHTTP_VERBOSITY").Int()
)

func main() {
	kingpin.HelpFlag.Short('h')
	kingpin.Parse()

	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	_ = klogFlags.Set("v", strconv.Itoa(*verbosity))
	defer klog.Flush()

	var src io.Reader = os.Stdin
	if *input != "-" {
		file, err := os.Open(*input)
		if err != nil {
			klog.Exitln("failed to open the input:", err)
		}
		defer file.Close()
		src = file
	}

	cfg := config.Default()
	cfg.URI.MaxLength = *maxURI
	cfg.Headers.MaxSpace = *maxHeaders
	cfg.Body.MaxSize = *maxBody
	cfg.Query.ScratchSize = *maxParam
	if *legacyLookup {
		cfg.Query.Strategy = config.LookupTokenized
	}

	opts := options{
		Config:      cfg,
		Params:      *params,
		ReplyLength: *replyLength,
		Peer:        *peer,
		CRLF:        *fixNewlines,
	}

	rejected, err := run(src, os.Stdout, opts)
	if err != nil {
		klog.Exitln(err)
	}

	if rejected {
		klog.Flush()
		os.Exit(1)
	}
}

func init() {
	kingpin.CommandLine.Help = "Parses a raw HTTP/1.x request the way a tiny embedded server does and reports the result as JSON."
}

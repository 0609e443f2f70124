// Command dnswire decodes a DNS wire-format packet and prints a
// human-readable summary of its header and sections. The packet is read
// from a file argument or stdin, as a hex dump or raw binary depending on
// configuration. It performs no network I/O; transport belongs to the
// caller that captured the packet.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dnswire/dnswire/internal/dns/common/log"
	"github.com/dnswire/dnswire/internal/dns/config"
	"github.com/dnswire/dnswire/internal/dns/domain"
	"github.com/dnswire/dnswire/internal/dns/wire"
)

const (
	version = "0.1.0-dev"
	appName = "dnswire"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Debug(map[string]any{
		"version": version,
		"env":     cfg.Env,
		"format":  cfg.Format,
	}, "Starting "+appName)

	data, err := readPacket(cfg.Format, os.Args[1:])
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to read packet")
	}

	codec := wire.NewCodec(log.GetLogger())
	msg, err := codec.Decode(data)
	if err != nil {
		log.Fatal(map[string]any{"error": err, "size": len(data)}, "Failed to decode packet")
	}

	printMessage(msg, len(data))
}

// readPacket reads one packet from the file named by the first argument, or
// from stdin when no argument is given.
func readPacket(format string, args []string) ([]byte, error) {
	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	if format == "raw" {
		return raw, nil
	}
	return hex.DecodeString(strings.Join(strings.Fields(string(raw)), ""))
}

// printMessage writes a human-readable rendering of the message to stdout.
func printMessage(msg domain.Message, size int) {
	h := msg.Header
	fmt.Printf(";; id %d, %s, opcode %s, rcode %s, %d bytes\n",
		h.ID, h.Type, h.OpCode, h.RCode, size)
	fmt.Printf(";; flags:%s; QUERY %d, ANSWER %d, AUTHORITY %d, ADDITIONAL %d\n",
		flagString(h), h.QuestionCount, h.AnswerCount, h.AuthorityCount, h.AdditionalCount)

	if len(msg.Questions) > 0 {
		fmt.Println(";; QUESTION SECTION:")
		for _, q := range msg.Questions {
			fmt.Printf(";%s\t%s\t%s\n", q.Name, q.Class, q.Type)
		}
	}

	printSection("ANSWER", msg.Answers)
	printSection("AUTHORITY", msg.Authorities)
	printSection("ADDITIONAL", msg.Additionals)
}

func printSection(name string, records []domain.ResourceRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Printf(";; %s SECTION:\n", name)
	for _, rr := range records {
		fmt.Printf("%s\t%d\t%s\t%s\t%s\n", rr.Name, rr.TTL, rr.Class, rr.Type(), rdataString(rr.Data))
	}
}

func flagString(h domain.Header) string {
	var flags []string
	if h.Type == domain.PacketTypeResponse {
		flags = append(flags, " qr")
	}
	if h.AuthoritativeAnswer {
		flags = append(flags, " aa")
	}
	if h.Truncated {
		flags = append(flags, " tc")
	}
	if h.RecursionDesired {
		flags = append(flags, " rd")
	}
	if h.RecursionAvailable {
		flags = append(flags, " ra")
	}
	return strings.Join(flags, "")
}

// rdataString renders a record payload for display.
func rdataString(data domain.RData) string {
	switch v := data.(type) {
	case domain.AData:
		return v.Addr.String()
	case domain.NSData:
		return v.Name.String()
	case domain.MDData:
		return v.Name.String()
	case domain.MFData:
		return v.Name.String()
	case domain.CNAMEData:
		return v.Name.String()
	case domain.SOAData:
		return fmt.Sprintf("%s %s %d %d %d %d %d",
			v.MName, v.RName, v.Serial, v.Refresh, v.Retry, v.Expire, v.Minimum)
	case domain.MBData:
		return v.Name.String()
	case domain.MGData:
		return v.Name.String()
	case domain.MRData:
		return v.Name.String()
	case domain.NULLData:
		return fmt.Sprintf("\\# %d %x", len(v.Data), v.Data)
	case domain.PTRData:
		return v.Name.String()
	case domain.HINFOData:
		return fmt.Sprintf("%q %q", v.CPU, v.OS)
	case domain.MINFOData:
		return fmt.Sprintf("%s %s", v.RMailbox, v.EMailbox)
	case domain.MXData:
		return fmt.Sprintf("%d %s", v.Preference, v.Exchange)
	case domain.TXTData:
		parts := make([]string, 0, len(v.Strings))
		for _, s := range v.Strings {
			parts = append(parts, fmt.Sprintf("%q", s))
		}
		return strings.Join(parts, " ")
	default:
		return "<unprintable>"
	}
}

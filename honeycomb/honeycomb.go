// Package honeycomb sends stopwatch statistics to Honeycomb as events.
//
// Summary
//
// NewClient builds a libhoney client from a small Config, filling in the same
// defaults the beeline uses. SendEvents then turns every timer in a Stopwatch
// into one event, so the numbers you'd read in a text report can be graphed
// and queried instead.
//
//   client, _ := honeycomb.NewClient(honeycomb.Config{
//     WriteKey: "abcabc123123defdef456456",
//     Dataset: "myapp-timings",
//   })
//   defer client.Close()
//   honeycomb.SendEvents(client.NewBuilder(), sw)
package honeycomb

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	libhoney "github.com/honeycombio/libhoney-go"
	"github.com/honeycombio/libhoney-go/transmission"
	"github.com/honeycombio/stopwatch-go"
)

const (
	version = "0.1.0"

	defaultWriteKey = "writekey-placeholder"
	defaultDataset  = "stopwatch-go"
)

// Config is the place where you configure your Honeycomb write key and dataset
// name. WriteKey is the only required field in order to actually send events to
// Honeycomb.
type Config struct {
	// WriteKey is your Honeycomb authentication token, available from
	// https://ui.honeycomb.io/account. default: writekey-placeholder
	WriteKey string
	// Dataset is the name of the Honeycomb dataset to which events will be
	// sent. default: stopwatch-go
	Dataset string
	// ServiceName identifies your application. If set it will be added to all
	// events as `service_name`
	ServiceName string
	// APIHost is the hostname for the Honeycomb API server to which to send
	// events. default: https://api.honeycomb.io/
	APIHost string
	// STDOUT when set to true will print events to STDOUT *instead* of sending
	// them to honeycomb; useful for development. default: false
	STDOUT bool
	// Mute when set to true will disable Honeycomb entirely; useful for tests
	// and CI. default: false
	Mute bool
	// Debug will print the result of every send to DebugOutput when true.
	Debug bool
	// DebugOutput receives the Debug lines. default: os.Stdout
	DebugOutput io.Writer
	// Transmission overrides STDOUT and Mute. Tests put a
	// transmission.MockSender here.
	Transmission transmission.Sender
}

// NewClient creates a libhoney client that stamps every event with the
// stopwatch version, the service name and the local hostname.
func NewClient(config Config) (*libhoney.Client, error) {
	if config.WriteKey == "" {
		config.WriteKey = defaultWriteKey
	}
	if config.Dataset == "" {
		config.Dataset = defaultDataset
	}
	var tx transmission.Sender
	if config.STDOUT {
		tx = &transmission.WriterSender{}
	}
	if config.Mute {
		tx = &transmission.DiscardSender{}
	}
	if config.Transmission != nil {
		tx = config.Transmission
	}
	clientConfig := libhoney.ClientConfig{
		APIKey:       config.WriteKey,
		Dataset:      config.Dataset,
		Transmission: tx,
	}
	if config.APIHost != "" {
		clientConfig.APIHost = config.APIHost
	}
	client, err := libhoney.NewClient(clientConfig)
	if err != nil {
		return nil, err
	}

	client.AddField("meta.stopwatch_version", version)
	if config.ServiceName != "" {
		client.AddField("service_name", config.ServiceName)
	}
	if hostname, err := os.Hostname(); err == nil {
		client.AddField("meta.local_hostname", hostname)
	}

	if config.Debug {
		if config.DebugOutput == nil {
			config.DebugOutput = os.Stdout
		}
		go readResponses(config.DebugOutput, client.TxResponses())
	}
	return client, nil
}

// SendEvents sends one event per timer in sw, in the order the timers were
// first started. Nothing is sent while sw is disabled.
func SendEvents(builder *libhoney.Builder, sw *stopwatch.Stopwatch) error {
	if !sw.Active() {
		return nil
	}
	var errs []error
	for _, name := range sw.Names() {
		st, err := sw.Snapshot(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ev := builder.NewEvent()
		ev.Metadata = st.Name
		ev.AddField("name", st.Name)
		ev.AddField("stopwatch.id", sw.ID())
		ev.AddField("stopwatch.mode", sw.Mode().String())
		ev.AddField("total_sec", st.Total)
		ev.AddField("min_sec", st.Min)
		ev.AddField("max_sec", st.Max)
		ev.AddField("last_sec", st.Last)
		ev.AddField("stops", st.Stops)
		ev.AddField("paused", st.Paused)
		// NaN can't be marshalled to JSON
		if st.Stops > 0 {
			ev.AddField("avg_sec", st.Average())
		}
		if err := ev.Send(); err != nil {
			errs = append(errs, fmt.Errorf("sending %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// readResponses writes one line per transmission response to w, naming the
// timer each event was built from. It returns when responses is closed.
func readResponses(w io.Writer, responses <-chan transmission.Response) {
	for r := range responses {
		name, _ := r.Metadata.(string)
		if r.StatusCode >= 200 && r.StatusCode < 300 {
			fmt.Fprintf(w, "sent timer %q to Honeycomb in %v\n", name, r.Duration)
			continue
		}
		if r.Err != nil {
			fmt.Fprintf(w, "failed to send timer %q to Honeycomb: %v\n", name, r.Err)
			continue
		}
		fmt.Fprintf(w, "failed to send timer %q to Honeycomb: status %d: %s\n", name, r.StatusCode, bytes.TrimSpace(r.Body))
	}
}

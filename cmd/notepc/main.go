package main

import (
	"flag"
	"os"
	"os/signal"

	charmlog "github.com/charmbracelet/log"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/Nico7an/MidiNoteToProgramChange/event"
	"github.com/Nico7an/MidiNoteToProgramChange/translate"
)

func main() {
	inPort := flag.String("input", "", "MIDI input port name (live mode)")
	outPort := flag.String("output", "", "MIDI output port name")
	fileName := flag.String("file", "", "translate a MIDI file instead of listening to a port")
	outFile := flag.String("out", "", "output file for -file (default: <file>.pc.mid)")
	serialPort := flag.String("serial", "", "read raw MIDI bytes from this serial port instead of a MIDI input")
	baud := flag.Int("baud", 115200, "serial port baud rate")
	configFile := flag.String("config", "", "YAML config file")
	debug := flag.Bool("debug", false, "log every translated event")

	mapping := flag.String("mapping", "direct", "note mapping: direct or offset")
	outputChannel := flag.Int("channel", 0, "output channel: 0 = same as input note, 1-16 = fixed")
	maxNote := flag.Int("max-note", translate.DefaultMaxNote, "highest note that still converts")
	baseNote := flag.Int("base-note", translate.DefaultBaseNote, "note mapped to program 0 (offset mapping)")
	passThrough := flag.Bool("pass-through", true, "forward non-note events")

	flag.Parse()

	level := charmlog.InfoLevel
	if *debug {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "notepc",
	})

	fileCfg := DefaultFileConfig()
	if *configFile != "" {
		var err error
		fileCfg, err = LoadConfig(*configFile)
		if err != nil {
			logger.Error("config", "err", err)
		}
	}
	// flags given on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mapping":
			fileCfg.Mapping = *mapping
		case "channel":
			fileCfg.OutputChannel = *outputChannel
		case "max-note":
			fileCfg.MaxNote = *maxNote
		case "base-note":
			fileCfg.BaseNote = *baseNote
		case "pass-through":
			fileCfg.PassThrough = *passThrough
		}
	})

	params := translate.NewParams()
	fileCfg.Apply(params)
	cfg := params.Snapshot()
	logger.Info("config",
		"mapping", cfg.Mapping.String(),
		"maxNote", cfg.MaxNote,
		"baseNote", cfg.BaseNote,
		"passThrough", cfg.PassOther)

	if *fileName != "" {
		if err := translateFile(logger, cfg, *fileName, *outFile); err != nil {
			logger.Fatal(err)
		}
		return
	}

	defer midi.CloseDriver()

	out, err := midi.FindOutPort(*outPort)
	if err != nil {
		logger.Info("can't find output, opening a virtual one")
		out, err = drivers.Get().(*rtmididrv.Driver).OpenVirtualOut("notepc")
		if err != nil {
			logger.Fatal(err)
		}
	}
	logger.Info("output", "port", out.String())
	send, err := midi.SendTo(out)
	if err != nil {
		logger.Fatal(err)
	}

	if *serialPort != "" {
		if err := runSerial(logger, params, *serialPort, *baud, send); err != nil {
			logger.Fatal(err)
		}
		return
	}

	in, err := midi.FindInPort(*inPort)
	if err != nil {
		logger.Info("can't find input, opening a virtual one")
		in, err = drivers.Get().(*rtmididrv.Driver).OpenVirtualIn("notepc")
		if err != nil {
			logger.Fatal(err)
		}
	}
	logger.Info("input", "port", in.String())

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		process(logger, params, msg, timestampms, send)
	}, midi.UseSysEx())
	if err != nil {
		logger.Fatal(err)
	}

	logger.Info("translating, ctrl-c to quit")
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt)
	<-signalCh
	stop()
}

// process runs one incoming message through the decision engine and sends
// whatever comes out. Each delivery gets its own parameter snapshot, so the
// control side can retune flags-to-be while notes keep flowing.
func process(logger *charmlog.Logger, params *translate.Params, msg midi.Message, timing int32, send func(midi.Message) error) {
	cfg := params.Snapshot()
	in := event.FromMessage(msg, timing)
	cfg.Translate([]event.Event{in}, func(out event.Event) {
		if err := send(event.ToMessage(out)); err != nil {
			logger.Error("send", "err", err)
			return
		}
		logger.Debug("translated", "in", in.String(), "out", out.String())
	})
}

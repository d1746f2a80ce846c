package main

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"gitlab.com/gomidi/midi/v2"
	"go.bug.st/serial"

	"github.com/Nico7an/MidiNoteToProgramChange/translate"
)

// byteParser reassembles MIDI messages from a raw serial byte stream. It keeps
// running status, so a keyboard that sends the status byte once and data pairs
// after still comes out as full messages.
type byteParser struct {
	status uint8
	data   [2]uint8
	have   int
}

func dataLen(status uint8) int {
	switch status & 0xF0 {
	case 0xC0, 0xD0: // program change, channel pressure
		return 1
	}
	return 2
}

// feed consumes one byte and returns a complete message when one finishes.
// System realtime bytes pass through immediately, even mid-message; system
// common bytes clear running status and their payload is skipped.
func (p *byteParser) feed(b uint8) (midi.Message, bool) {
	switch {
	case b >= 0xF8:
		return midi.Message{b}, true
	case b >= 0xF0:
		p.status = 0
		p.have = 0
		return nil, false
	case b >= 0x80:
		p.status = b
		p.have = 0
		return nil, false
	}
	if p.status == 0 {
		return nil, false // stray data byte, nothing to attach it to
	}
	p.data[p.have] = b
	p.have++
	if p.have < dataLen(p.status) {
		return nil, false
	}
	p.have = 0 // status stays armed for running status
	if dataLen(p.status) == 1 {
		return midi.Message{p.status, p.data[0]}, true
	}
	return midi.Message{p.status, p.data[0], p.data[1]}, true
}

// runSerial reads raw MIDI bytes off a serial port and pushes every completed
// message through the same translate-and-send path as the live mode.
func runSerial(logger *charmlog.Logger, params *translate.Params, portName string, baud int, send func(midi.Message) error) error {
	ports, err := serial.GetPortsList()
	if err != nil {
		return err
	}
	for _, port := range ports {
		logger.Debug("found serial port", "port", port)
	}

	port, err := serial.Open(portName, &serial.Mode{BaudRate: baud})
	if err != nil {
		return fmt.Errorf("open %s: %w", portName, err)
	}
	defer port.Close()
	logger.Info("serial input", "port", portName, "baud", baud)

	port.ResetInputBuffer()
	parser := byteParser{}
	buf := make([]byte, 64)
	for {
		n, err := port.Read(buf)
		if err != nil {
			return err
		}
		for _, b := range buf[:n] {
			msg, ok := parser.feed(b)
			if !ok {
				continue
			}
			process(logger, params, msg, 0, send)
		}
	}
}

package lint

import (
	"fmt"
	"slices"
	"strings"
)

// section order required at the top level; sections may be absent
var sectionOrder = []string{
	"VERSION", "DATA_MODE", "UNITS", "BOARD", "PLANE_SEP", "STACKUP", "DEVICES", "PADSTACK", "NET", "END",
}

// NetSummary counts the records of one net block
type NetSummary struct {
	Name            string
	PlaneSeparation string         // PS= value, empty when inherited
	Records         map[string]int // by record or block keyword
}

// Summary describes a parsed document
type Summary struct {
	Version    string
	Units      []string
	Sections   []string // top-level keywords, in document order
	BoardEdges int
	Padstacks  []string
	Devices    []string
	Nets       []NetSummary
	Terminated bool     // {END} is the last section
	Problems   []string // order and reference problems, empty for a clean file
}

// Net returns the summary of the named net
func (s *Summary) Net(name string) (NetSummary, bool) {
	for _, n := range s.Nets {
		if n.Name == name {
			return n, true
		}
	}
	return NetSummary{}, false
}

func (s *Summary) problem(format string, args ...any) {
	s.Problems = append(s.Problems, fmt.Sprintf(format, args...))
}

// Summarize walks a parsed file, collecting section and record counts and
// flagging sections out of order, duplicate names, dangling padstack and
// device references, and voids of polygons not defined earlier in the net.
func Summarize(f *File) *Summary {
	s := &Summary{}
	padstacks := make(map[string]bool)
	devices := make(map[string]bool)
	nets := make(map[string]bool)
	rank := -1

	for _, sec := range f.Sections {
		kw := sec.Keyword()
		s.Sections = append(s.Sections, kw)

		r := slices.Index(sectionOrder, kw)
		switch {
		case r < 0:
			s.problem("%s: unknown section %q", sec.Pos, kw)
		case r < rank:
			s.problem("%s: section %s after %s", sec.Pos, kw, sectionOrder[rank])
		default:
			rank = r
		}

		switch kw {
		case "VERSION":
			if v := sec.Value(); len(v) > 0 {
				s.Version = v[0]
			}
		case "UNITS":
			s.Units = sec.Value()
		case "BOARD":
			s.BoardEdges = len(sec.Body)
		case "DEVICES":
			for _, n := range sec.Body {
				if n.Record == nil {
					continue
				}
				if ref, ok := n.Record.Attr("REF"); ok {
					s.Devices = append(s.Devices, ref)
					devices[ref] = true
				}
			}
		case "PADSTACK":
			name := first(sec.Value())
			if padstacks[name] {
				s.problem("%s: duplicate padstack %q", sec.Pos, name)
			}
			padstacks[name] = true
			s.Padstacks = append(s.Padstacks, name)
		case "NET":
			name := first(sec.Value())
			if nets[name] {
				s.problem("%s: duplicate net %q", sec.Pos, name)
			}
			nets[name] = true
			s.Nets = append(s.Nets, s.net(sec, name, padstacks, devices))
		}
	}

	if n := len(s.Sections); n == 0 || s.Sections[n-1] != "END" {
		s.problem("missing {END} terminator")
	} else {
		s.Terminated = true
	}
	return s
}

func (s *Summary) net(sec *Section, name string, padstacks, devices map[string]bool) NetSummary {
	ns := NetSummary{Name: name, Records: make(map[string]int)}
	ns.PlaneSeparation, _ = sec.Attr("PS")
	polygons := make(map[string]bool)

	for _, n := range sec.Body {
		switch {
		case n.Record != nil:
			rec := n.Record
			ns.Records[rec.Keyword()]++
			switch rec.Keyword() {
			case "VIA", "PIN":
				// legacy vias carry no padstack
				if ps, ok := rec.Attr("P"); ok && !padstacks[ps] {
					s.problem("%s: net %s references unknown padstack %q", rec.Pos, name, ps)
				}
			}
			if rec.Keyword() == "PIN" {
				ref, _ := rec.Attr("R")
				if dev := deviceOf(ref); !devices[dev] {
					s.problem("%s: net %s pin %q on unknown device", rec.Pos, name, ref)
				}
			}
		case n.Block != nil:
			b := n.Block
			ns.Records[b.Keyword()]++
			id, _ := b.Attr("ID")
			switch b.Keyword() {
			case "POLYGON":
				polygons[id] = true
			case "POLYVOID":
				if !polygons[id] {
					s.problem("%s: net %s void of undefined polygon %s", b.Pos, name, id)
				}
			}
		}
	}
	return ns
}

func first(v []string) string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

func deviceOf(pinRef string) string {
	dev, _, _ := strings.Cut(pinRef, ".")
	return dev
}

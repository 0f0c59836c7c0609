package jetbrains

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
)

// recentXML mirrors the RecentProjectsManager component:
//
//	<application>
//	  <component name="RecentDirectoryProjectsManager">
//	    <option name="recentPaths"><list><option value="$USER_HOME$/src/foo"/></list></option>
//	    <option name="additionalInfo">
//	      <map>
//	        <entry key="$USER_HOME$/src/foo">
//	          <value><RecentProjectMetaInfo><option name="projectOpenTimestamp" value="1577836800000"/></RecentProjectMetaInfo></value>
//	        </entry>
//	      </map>
//	    </option>
//	  </component>
//	</application>
type recentXML struct {
	Components []struct {
		Options []xmlOption `xml:"option"`
	} `xml:"component"`
}

type xmlOption struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	List  struct {
		Options []xmlOption `xml:"option"`
	} `xml:"list"`
	Map struct {
		Entries []xmlEntry `xml:"entry"`
	} `xml:"map"`
}

type xmlEntry struct {
	Key   string `xml:"key,attr"`
	Value struct {
		Meta struct {
			Options []xmlOption `xml:"option"`
		} `xml:"RecentProjectMetaInfo"`
	} `xml:"value"`
}

// RecentEntry is one raw path from a recent-projects file with its open timestamp (ms, 0 if unknown).
type RecentEntry struct {
	Key       string
	Timestamp int64
}

// ParseRecent reads a recent-projects file. Paths come from recentPaths and
// from additionalInfo keys that carry an open timestamp, in document order,
// without duplicates.
func ParseRecent(r io.Reader) ([]RecentEntry, error) {
	var doc recentXML
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode recent projects: %w", err)
	}

	var entries []RecentEntry
	index := make(map[string]int)
	add := func(key string) int {
		if i, ok := index[key]; ok {
			return i
		}
		index[key] = len(entries)
		entries = append(entries, RecentEntry{Key: key})
		return len(entries) - 1
	}

	for _, c := range doc.Components {
		for _, o := range c.Options {
			switch o.Name {
			case "recentPaths":
				for _, p := range o.List.Options {
					if p.Value != "" {
						add(p.Value)
					}
				}
			case "additionalInfo":
				for _, e := range o.Map.Entries {
					if e.Key == "" {
						continue
					}
					// keys without a timestamp only count when recentPaths lists them
					ts, ok := openTimestamp(e.Value.Meta.Options)
					if !ok {
						continue
					}
					entries[add(e.Key)].Timestamp = ts
				}
			}
		}
	}
	return entries, nil
}

func openTimestamp(opts []xmlOption) (int64, bool) {
	for _, o := range opts {
		if o.Name != "projectOpenTimestamp" {
			continue
		}
		ts, err := strconv.ParseInt(o.Value, 10, 64)
		if err != nil {
			return 0, false
		}
		return ts, true
	}
	return 0, false
}

func parseRecentFile(path string) ([]RecentEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRecent(f)
}

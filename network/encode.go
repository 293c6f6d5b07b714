// SPDX-License-Identifier: MIT

package network

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pkg/errors"
)

type outRecord struct {
	Participants []string `json:"participants"`
	End          string   `json:"end"`
}

// Encode writes n in the JSON format Decode reads. End times are RFC 3339
// in UTC; channel keys come out sorted.
func Encode(w io.Writer, n *CommunicationNetwork) error {
	out := make(map[string]outRecord, n.HyperedgeCount())
	for _, h := range n.AllChannels() {
		members, err := n.Participants(h)
		if err != nil {
			return errors.Wrap(err, "encode network")
		}
		end, err := n.End(h)
		if err != nil {
			return errors.Wrap(err, "encode network")
		}
		out[h] = outRecord{Participants: members, End: end.Format(time.RFC3339Nano)}
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "encode network")
	}

	return nil
}

package codec

import (
	"go.trai.ch/lintsync/internal/core/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

// Server issue fields.
const (
	issueKey             protowire.Number = 1
	issueModuleKey       protowire.Number = 2
	issuePath            protowire.Number = 3
	issueRuleRepository  protowire.Number = 4
	issueRuleKey         protowire.Number = 5
	issueSeverity        protowire.Number = 6
	issueType            protowire.Number = 7
	issueAssigneeLogin   protowire.Number = 8
	issueLineHash        protowire.Number = 9
	issueCreationDate    protowire.Number = 10
	issueResolution      protowire.Number = 11
	issuePrimaryLocation protowire.Number = 12
	issueFlow            protowire.Number = 13
)

// MarshalServerIssue encodes one issue record.
func MarshalServerIssue(i *domain.ServerIssue) []byte {
	var b []byte
	b = appendString(b, issueKey, i.Key)
	b = appendString(b, issueModuleKey, i.ModuleKey)
	b = appendString(b, issuePath, i.Path)
	b = appendString(b, issueRuleRepository, i.RuleRepository)
	b = appendString(b, issueRuleKey, i.RuleKey)
	b = appendString(b, issueSeverity, i.Severity)
	b = appendString(b, issueType, i.Type)
	b = appendString(b, issueAssigneeLogin, i.AssigneeLogin)
	b = appendString(b, issueLineHash, i.LineHash)
	b = appendInt64(b, issueCreationDate, i.CreationDate)
	b = appendString(b, issueResolution, i.Resolution)
	b = appendMessage(b, issuePrimaryLocation, marshalLocation(i.PrimaryLocation))
	for _, f := range i.Flows {
		var fb []byte
		for _, l := range f.Locations {
			fb = appendMessage(fb, 1, marshalLocation(l))
		}
		b = appendMessage(b, issueFlow, fb)
	}
	return b
}

// UnmarshalServerIssue decodes one issue record.
func UnmarshalServerIssue(b []byte) (*domain.ServerIssue, error) {
	i := &domain.ServerIssue{}
	err := fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case issueKey:
			return consumeString(typ, b, &i.Key), nil
		case issueModuleKey:
			return consumeString(typ, b, &i.ModuleKey), nil
		case issuePath:
			return consumeString(typ, b, &i.Path), nil
		case issueRuleRepository:
			return consumeString(typ, b, &i.RuleRepository), nil
		case issueRuleKey:
			return consumeString(typ, b, &i.RuleKey), nil
		case issueSeverity:
			return consumeString(typ, b, &i.Severity), nil
		case issueType:
			return consumeString(typ, b, &i.Type), nil
		case issueAssigneeLogin:
			return consumeString(typ, b, &i.AssigneeLogin), nil
		case issueLineHash:
			return consumeString(typ, b, &i.LineHash), nil
		case issueCreationDate:
			return consumeInt64(typ, b, &i.CreationDate), nil
		case issueResolution:
			return consumeString(typ, b, &i.Resolution), nil
		case issuePrimaryLocation:
			return consumeMessage(typ, b, func(m []byte) error {
				return unmarshalLocation(m, &i.PrimaryLocation)
			})
		case issueFlow:
			return consumeMessage(typ, b, func(m []byte) error {
				f, err := unmarshalFlow(m)
				i.Flows = append(i.Flows, f)
				return err
			})
		default:
			return skip, nil
		}
	})
	if err != nil {
		return nil, err
	}
	return i, nil
}

// MarshalStoredIssue encodes an issue together with its file key:
// {1: file key, 2: issue}.
func MarshalStoredIssue(fileKey string, i *domain.ServerIssue) []byte {
	var b []byte
	b = appendString(b, 1, fileKey)
	return appendMessage(b, 2, MarshalServerIssue(i))
}

// UnmarshalStoredIssue decodes an issue and its file key.
// The issue is only decoded when match accepts the file key; otherwise it is nil.
func UnmarshalStoredIssue(b []byte, match func(fileKey string) bool) (string, *domain.ServerIssue, error) {
	var fileKey string
	var raw []byte
	err := fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &fileKey), nil
		case 2:
			return consumeMessage(typ, b, func(m []byte) error {
				raw = m
				return nil
			})
		default:
			return skip, nil
		}
	})
	if err != nil {
		return "", nil, err
	}
	if match != nil && !match(fileKey) {
		return fileKey, nil, nil
	}
	issue, err := UnmarshalServerIssue(raw)
	if err != nil {
		return "", nil, err
	}
	return fileKey, issue, nil
}

// Location fields: {1: path, 2: message, 3: text range}.
func marshalLocation(l domain.Location) []byte {
	var b []byte
	b = appendString(b, 1, l.Path)
	b = appendString(b, 2, l.Message)
	if l.TextRange != nil {
		var r []byte
		r = appendInt64(r, 1, int64(l.TextRange.StartLine))
		r = appendInt64(r, 2, int64(l.TextRange.StartLineOffset))
		r = appendInt64(r, 3, int64(l.TextRange.EndLine))
		r = appendInt64(r, 4, int64(l.TextRange.EndLineOffset))
		b = appendMessage(b, 3, r)
	}
	return b
}

func unmarshalLocation(b []byte, l *domain.Location) error {
	return fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &l.Path), nil
		case 2:
			return consumeString(typ, b, &l.Message), nil
		case 3:
			return consumeMessage(typ, b, func(m []byte) error {
				l.TextRange = &domain.TextRange{}
				return unmarshalTextRange(m, l.TextRange)
			})
		default:
			return skip, nil
		}
	})
}

func unmarshalTextRange(b []byte, r *domain.TextRange) error {
	return fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt(typ, b, &r.StartLine), nil
		case 2:
			return consumeInt(typ, b, &r.StartLineOffset), nil
		case 3:
			return consumeInt(typ, b, &r.EndLine), nil
		case 4:
			return consumeInt(typ, b, &r.EndLineOffset), nil
		default:
			return skip, nil
		}
	})
}

func unmarshalFlow(b []byte) (domain.Flow, error) {
	var f domain.Flow
	err := fields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return skip, nil
		}
		return consumeMessage(typ, b, func(m []byte) error {
			var l domain.Location
			err := unmarshalLocation(m, &l)
			f.Locations = append(f.Locations, l)
			return err
		})
	})
	return f, err
}

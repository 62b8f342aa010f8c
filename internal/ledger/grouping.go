package ledger

import (
	"sort"
	"strings"
)

// Group is a named bucket of accounts whose transactions are aggregated
// together for reporting.
type Group struct {
	Name         string
	Prefix       string
	AccountNames []string
}

// GroupByPrefix partitions account names by their first whitespace-delimited
// token. displayNames maps known prefixes to display names; unmapped prefixes
// use the prefix itself. Empty or all-whitespace names bucket under an empty
// prefix rather than failing the build. Groups are ordered by first
// appearance.
func GroupByPrefix(accountNames []string, displayNames map[string]string) []Group {
	var groups []Group
	seen := make(map[string]int)

	for _, name := range accountNames {
		prefix := ""
		if fields := strings.Fields(name); len(fields) > 0 {
			prefix = fields[0]
		}
		index, ok := seen[prefix]
		if !ok {
			displayName := prefix
			if mapped, found := displayNames[prefix]; found {
				displayName = mapped
			}
			index = len(groups)
			seen[prefix] = index
			groups = append(groups, Group{Name: displayName, Prefix: prefix})
		}
		groups[index].AccountNames = append(groups[index].AccountNames, name)
	}

	return groups
}

// GroupByMapping partitions account names using an explicit account-name to
// group-name table. Every distinct group name in the mapping produces exactly
// one group, even when no listed account is a member. Accounts absent from
// the mapping are excluded. Groups are ordered by name.
func GroupByMapping(accountNames []string, mapping map[string]string) []Group {
	groupNames := make([]string, 0, len(mapping))
	seen := make(map[string]int)
	for _, groupName := range mapping {
		if _, ok := seen[groupName]; !ok {
			seen[groupName] = 0
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	groups := make([]Group, len(groupNames))
	for i, groupName := range groupNames {
		groups[i] = Group{Name: groupName}
		seen[groupName] = i
	}

	for _, name := range accountNames {
		groupName, ok := mapping[name]
		if !ok {
			continue
		}
		index := seen[groupName]
		groups[index].AccountNames = append(groups[index].AccountNames, name)
	}

	return groups
}

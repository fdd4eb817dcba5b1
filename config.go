package sshconf

import "slices"

// HostBlock pairs one Host declaration's pattern list with the keyword
// values declared below it. Blocks are owned by the Config that contains
// them and are not shared between configurations.
type HostBlock struct {
	Hosts    HostList
	Keywords *KeywordSet
}

// NewHostBlock builds a block from a host list and a keyword set. A nil
// keyword set is replaced with an empty one.
func NewHostBlock(hosts HostList, keywords *KeywordSet) HostBlock {
	if keywords == nil {
		keywords = &KeywordSet{}
	}
	return HostBlock{Hosts: hosts, Keywords: keywords}
}

// Config is an ordered sequence of host blocks. Block order is parse order
// and also precedence order: when several matching blocks declare the same
// keyword, the earliest block's value wins.
//
// Blocks with identical pattern lists stay separate; they are only folded
// together at query time.
type Config struct {
	blocks []HostBlock
}

// Append adds a block to the end of the configuration.
func (c *Config) Append(block HostBlock) {
	if block.Keywords == nil {
		block.Keywords = &KeywordSet{}
	}
	c.blocks = append(c.blocks, block)
}

// Blocks returns the blocks in configuration order.
func (c *Config) Blocks() []HostBlock {
	return slices.Clone(c.blocks)
}

// Len returns the number of blocks.
func (c *Config) Len() int {
	return len(c.blocks)
}

// MatchingBlocks returns every block whose host list matches hostname, in
// configuration order.
func (c *Config) MatchingBlocks(hostname string) ([]HostBlock, error) {
	var matched []HostBlock
	for _, block := range c.blocks {
		match, err := block.Hosts.Matches(hostname)
		if err != nil {
			return nil, err
		}
		if match {
			matched = append(matched, block)
		}
	}
	return matched, nil
}

// ForHost returns all configuration keywords that apply to hostname. The
// keyword sets of matching blocks are folded together in configuration order
// with MergeMissing, so the earliest declaration of each keyword wins and
// later matching blocks only fill gaps. When no block matches, the returned
// set is empty.
func (c *Config) ForHost(hostname string) (*KeywordSet, error) {
	result := &KeywordSet{}
	for _, block := range c.blocks {
		match, err := block.Hosts.Matches(hostname)
		if err != nil {
			return nil, err
		}
		if match {
			result.MergeMissing(block.Keywords)
		}
	}
	return result, nil
}

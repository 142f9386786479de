package awscloud

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// sortedKeys returns the map's keys in sorted order so request bodies are
// deterministic.
func sortedKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ec2Tags converts a tag map into the EC2 wire form.
func ec2Tags(tags map[string]string) []ec2types.Tag {
	out := make([]ec2types.Tag, 0, len(tags))
	for _, k := range sortedKeys(tags) {
		out = append(out, ec2types.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return out
}

// tagSpec builds the TagSpecifications block for a create call.
func tagSpec(resourceType ec2types.ResourceType, tags map[string]string) []ec2types.TagSpecification {
	if len(tags) == 0 {
		return nil
	}
	return []ec2types.TagSpecification{{
		ResourceType: resourceType,
		Tags:         ec2Tags(tags),
	}}
}

// tagFilter matches resources carrying the given tag.
func tagFilter(key, value string) ec2types.Filter {
	return ec2types.Filter{
		Name:   aws.String("tag:" + key),
		Values: []string{value},
	}
}

// nameFilter matches resources by their Name tag.
func nameFilter(name string) ec2types.Filter {
	return tagFilter("Name", name)
}

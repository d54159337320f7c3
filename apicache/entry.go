package apicache

import "github.com/jrsteele09/go-storefront-client/api"

// Status is the lifecycle state of a cache entry.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is the caller-visible snapshot of a cached response. Data is
// replaced wholesale on every refetch; callers never see a partial update.
type Entry struct {
	Endpoint api.EndpointID
	Args     string
	Status   Status
	Data     any
	Err      error
	Tags     []api.Tag
}

// entry is the internal mutable record behind an Entry snapshot.
type entry struct {
	key         Key
	args        any
	status      Status
	data        any
	err         error
	tags        map[api.Tag]struct{}
	stale       bool
	subscribers int
}

func (e *entry) snapshot() *Entry {
	tags := make([]api.Tag, 0, len(e.tags))
	for tag := range e.tags {
		tags = append(tags, tag)
	}
	return &Entry{
		Endpoint: e.key.Endpoint,
		Args:     e.key.Args,
		Status:   e.status,
		Data:     e.data,
		Err:      e.err,
		Tags:     tags,
	}
}

func (e *entry) hasAnyTag(tags []api.Tag) bool {
	for _, tag := range tags {
		if _, ok := e.tags[tag]; ok {
			return true
		}
	}
	return false
}

func tagSet(tags []api.Tag) map[api.Tag]struct{} {
	set := make(map[api.Tag]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

package models

// RecordFilter is a function type used to filter records in queries
type RecordFilter func(r ServiceRecord) bool

// RecordsByService returns all records carrying the given service id.
func (ins *Instance) RecordsByService(service int) []ServiceRecord {
	return ins.FilterRecords(func(r ServiceRecord) bool { return r.Service == service })
}

// RecordsByLocation returns all records attached to the given location.
func (ins *Instance) RecordsByLocation(location int) []ServiceRecord {
	return ins.FilterRecords(func(r ServiceRecord) bool { return r.Location == location })
}

// RecordsByPoint returns all records attached to the given demand point.
func (ins *Instance) RecordsByPoint(point int) []ServiceRecord {
	return ins.FilterRecords(func(r ServiceRecord) bool { return r.Point == point })
}

// ServicesUsed returns the set of distinct service ids appearing across
// all records. For a feasible instance this is exactly {0, …, S-1}.
func (ins *Instance) ServicesUsed() map[int]bool {
	used := make(map[int]bool, ins.Config.Services)
	for _, r := range ins.Records {
		used[r.Service] = true
	}
	return used
}

// FilterRecords returns records that match the provided filter function
func (ins *Instance) FilterRecords(filter RecordFilter) []ServiceRecord {
	var result []ServiceRecord
	for _, r := range ins.Records {
		if filter(r) {
			result = append(result, r)
		}
	}
	return result
}

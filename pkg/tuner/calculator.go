package tuner

import (
	"fmt"

	"mycnftune/pkg/config"
	"mycnftune/pkg/sysinfo"
	"mycnftune/pkg/util"
)

const (
	// MaxInnodbBufPoolInsts max value of innodb_buffer_pool_instances
	MaxInnodbBufPoolInsts = 8
)

// Parameter a single tuned key and its pre-formatted value,
// an empty value stands for a bare flag line
type Parameter struct {
	Key   string
	Value string
}

// Recommendation tuned parameters computed from host resources,
// with the numeric figures kept for reporting and runtime apply
type Recommendation struct {
	DBMemoryMB          uint64
	ConnectionsMemoryMB uint64
	RemainingMemoryMB   uint64
	InnodbBufPoolSizeMB uint64
	InnodbBufPoolInsts  uint64
	OtherBuffersMB      uint64
	JoinBufMB           uint64
	ReadBufMB           uint64
	ReadRndBufMB        uint64
	SortBufMB           uint64
	TmpTableMB          uint64
	MaxHeapTableMB      uint64
	ThreadCacheSize     uint64
	QueryCacheMB        uint64
	TableCache          uint64
	TableDefCache       uint64
	Parameters          []Parameter
}

// SizingConflictError connection memory does not fit into the
// memory budget allotted to the database process
type SizingConflictError struct {
	ConnectionsMemoryMB uint64
	DBMemoryMB          uint64
}

func (e *SizingConflictError) Error() string {
	return fmt.Sprintf(
		"connection memory %dMB meets or exceeds the database memory budget %dMB, lower max_connections or mem_per_connection_mb",
		e.ConnectionsMemoryMB, e.DBMemoryMB)
}

// Compute derives tuned parameters from host resources and the
// editable ratios. Pure integer arithmetic, truncating division
// throughout; no side effects.
func Compute(res sysinfo.HostResources, ratios config.Ratios) (*Recommendation, error) {
	dbMemory := res.TotalMemoryMB * ratios.MemoryPercentForDB / 100
	connectionsMemory := ratios.MaxConnections * ratios.MemPerConnectionMB

	if connectionsMemory >= dbMemory {
		return nil, &SizingConflictError{
			ConnectionsMemoryMB: connectionsMemory,
			DBMemoryMB:          dbMemory,
		}
	}

	remainingMemory := dbMemory - connectionsMemory
	bufPoolSize := remainingMemory * ratios.InnodbBufPoolPercent / 100

	bufPoolInsts := bufPoolSize / 1024
	if bufPoolInsts < 1 {
		bufPoolInsts = 1
	}
	if bufPoolInsts > MaxInnodbBufPoolInsts {
		bufPoolInsts = MaxInnodbBufPoolInsts
	}

	otherBuffers := remainingMemory - bufPoolSize
	joinBuf := otherBuffers * ratios.JoinBufPercent / 100
	readBuf := otherBuffers * ratios.ReadBufPercent / 100
	readRndBuf := otherBuffers * ratios.ReadRndBufPercent / 100
	sortBuf := otherBuffers * ratios.SortBufPercent / 100
	tmpTable := otherBuffers * ratios.TmpTablePercent / 100
	maxHeapTable := otherBuffers * ratios.MaxHeapTablePercent / 100

	threadCache := ratios.MaxConnections * 10 / 100
	queryCache := dbMemory * 10 / 100
	tableCache := dbMemory * ratios.TableCachePercent / 100
	tableDefCache := dbMemory * ratios.TableDefCachePercent / 100

	rec := &Recommendation{
		DBMemoryMB:          dbMemory,
		ConnectionsMemoryMB: connectionsMemory,
		RemainingMemoryMB:   remainingMemory,
		InnodbBufPoolSizeMB: bufPoolSize,
		InnodbBufPoolInsts:  bufPoolInsts,
		OtherBuffersMB:      otherBuffers,
		JoinBufMB:           joinBuf,
		ReadBufMB:           readBuf,
		ReadRndBufMB:        readRndBuf,
		SortBufMB:           sortBuf,
		TmpTableMB:          tmpTable,
		MaxHeapTableMB:      maxHeapTable,
		ThreadCacheSize:     threadCache,
		QueryCacheMB:        queryCache,
		TableCache:          tableCache,
		TableDefCache:       tableDefCache,
		Parameters: []Parameter{
			{"max_connections", fmt.Sprintf("%d", ratios.MaxConnections)},
			{"connect_timeout", fmt.Sprintf("%d", ratios.ConnectTimeout)},
			{"wait_timeout", fmt.Sprintf("%d", ratios.WaitTimeout)},
			{"interactive_timeout", fmt.Sprintf("%d", ratios.InteractiveTimeout)},
			{"innodb_buffer_pool_size", util.MBToSizeString(bufPoolSize)},
			{"innodb_buffer_pool_instances", fmt.Sprintf("%d", bufPoolInsts)},
			{"innodb_log_file_size", util.MBToSizeString(ratios.InnodbLogFileSizeMB)},
			{"innodb_log_buffer_size", util.MBToSizeString(ratios.InnodbLogBufSizeMB)},
			{"join_buffer_size", util.MBToSizeString(joinBuf)},
			{"read_buffer_size", util.MBToSizeString(readBuf)},
			{"read_rnd_buffer_size", util.MBToSizeString(readRndBuf)},
			{"sort_buffer_size", util.MBToSizeString(sortBuf)},
			{"tmp_table_size", util.MBToSizeString(tmpTable)},
			{"max_heap_table_size", util.MBToSizeString(maxHeapTable)},
			{"thread_cache_size", fmt.Sprintf("%d", threadCache)},
			{"query_cache_size", util.MBToSizeString(queryCache)},
			{"table_open_cache", fmt.Sprintf("%d", ratios.TableOpenCache)},
			{"table_cache", fmt.Sprintf("%d", tableCache)},
			{"table_definition_cache", fmt.Sprintf("%d", tableDefCache)},
			{"slow_query_log", "1"},
			{"slow_query_log_file", "/var/log/mysql/mysql-slow.log"},
			{"max_binlog_size", "100M"},
			{"expire_logs_days", "10"},
			{"skip-name-resolve", ""},
			{"innodb_file_per_table", "1"},
			{"character-set-server", "utf8mb4"},
			{"collation-server", "utf8mb4_general_ci"},
			{"performance_schema", "OFF"},
		},
	}

	return rec, nil
}

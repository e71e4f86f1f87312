package db

import (
	"fmt"

	"mycnftune/pkg/config"
	"mycnftune/pkg/log"
	"mycnftune/pkg/tuner"
	"mycnftune/pkg/util"

	"go.uber.org/zap"
)

type runtimeSetting struct {
	name  string
	value uint64
}

// ApplyRuntime pushes the dynamically settable subset of the
// recommendation to the running server with SET GLOBAL, skipping
// variables already at the recommended value. Non-dynamic
// parameters only take effect from the configuration file after
// the operator restarts the server. A single failed variable is
// logged and skipped, the rest are still applied.
func ApplyRuntime(rec *tuner.Recommendation, ratios config.Ratios) error {
	gvs, err := GetGlobalVariables()
	if err != nil {
		return err
	}

	// innodb_buffer_pool_size must be a multiple of
	// innodb_buffer_pool_chunk_size * innodb_buffer_pool_instances
	poolBytes := rec.InnodbBufPoolSizeMB * util.MB
	if base := gvs.InnodbBufPoolInsts * gvs.InnodbBufPoolChunkSize; base > 0 {
		poolBytes = util.NextUint64Multiple(poolBytes, base)
	}

	settings := []runtimeSetting{
		{"innodb_buffer_pool_size", poolBytes},
		{"max_connections", ratios.MaxConnections},
		{"connect_timeout", ratios.ConnectTimeout},
		{"wait_timeout", ratios.WaitTimeout},
		{"interactive_timeout", ratios.InteractiveTimeout},
		{"thread_cache_size", rec.ThreadCacheSize},
		{"table_open_cache", ratios.TableOpenCache},
		{"table_definition_cache", rec.TableDefCache},
		{"join_buffer_size", rec.JoinBufMB * util.MB},
		{"read_buffer_size", rec.ReadBufMB * util.MB},
		{"read_rnd_buffer_size", rec.ReadRndBufMB * util.MB},
		{"sort_buffer_size", rec.SortBufMB * util.MB},
		{"tmp_table_size", rec.TmpTableMB * util.MB},
		{"max_heap_table_size", rec.MaxHeapTableMB * util.MB},
	}

	current := map[string]uint64{
		"innodb_buffer_pool_size": gvs.InnodbBufferPoolSize,
		"max_connections":         gvs.MaxConnections,
		"connect_timeout":         gvs.ConnectTimeout,
		"wait_timeout":            gvs.WaitTimeout,
		"interactive_timeout":     gvs.InteractiveTimeout,
		"thread_cache_size":       gvs.ThreadCacheSize,
		"table_open_cache":        gvs.TableOpenCache,
		"table_definition_cache":  gvs.TableDefinitionCache,
		"join_buffer_size":        gvs.JoinBufferSize,
		"read_buffer_size":        gvs.ReadBufferSize,
		"read_rnd_buffer_size":    gvs.ReadRNDBufferSize,
		"sort_buffer_size":        gvs.SortBufferSize,
		"tmp_table_size":          gvs.TmpTableSize,
		"max_heap_table_size":     gvs.MaxHeapTableSize,
	}

	for _, s := range settings {
		if current[s.name] == s.value {
			continue
		}

		_, err := db.Exec(fmt.Sprintf("SET GLOBAL %s = ?", s.name), s.value)
		if err != nil {
			log.Logger().Error("set global variable failed",
				zap.String("variable", s.name), zap.Uint64("value", s.value), zap.NamedError("error", err))
			continue
		}

		log.Logger().Info("global variable updated",
			zap.String("variable", s.name), zap.Uint64("from", current[s.name]), zap.Uint64("to", s.value))
	}

	return nil
}

package db

// GlobalVariables structure of global variables
type GlobalVariables struct {
	InnodbBufferPoolSize   uint64 `db:"@@innodb_buffer_pool_size"`
	InnodbBufPoolInsts     uint64 `db:"@@innodb_buffer_pool_instances"`
	InnodbBufPoolChunkSize uint64 `db:"@@innodb_buffer_pool_chunk_size"`
	MaxConnections         uint64 `db:"@@max_connections"`
	ConnectTimeout         uint64 `db:"@@connect_timeout"`
	WaitTimeout            uint64 `db:"@@wait_timeout"`
	InteractiveTimeout     uint64 `db:"@@interactive_timeout"`
	ThreadCacheSize        uint64 `db:"@@thread_cache_size"`
	TableOpenCache         uint64 `db:"@@table_open_cache"`
	TableDefinitionCache   uint64 `db:"@@table_definition_cache"`
	JoinBufferSize         uint64 `db:"@@join_buffer_size"`
	ReadBufferSize         uint64 `db:"@@read_buffer_size"`
	ReadRNDBufferSize      uint64 `db:"@@read_rnd_buffer_size"`
	SortBufferSize         uint64 `db:"@@sort_buffer_size"`
	TmpTableSize           uint64 `db:"@@tmp_table_size"`
	MaxHeapTableSize       uint64 `db:"@@max_heap_table_size"`
}

// GetGlobalVariables reads global variables from db
func GetGlobalVariables() (gvs GlobalVariables, err error) {
	err = db.Get(&gvs, `
SELECT @@innodb_buffer_pool_size, @@innodb_buffer_pool_instances, @@innodb_buffer_pool_chunk_size,
	@@max_connections, @@connect_timeout, @@wait_timeout, @@interactive_timeout,
	@@thread_cache_size, @@table_open_cache, @@table_definition_cache,
	@@join_buffer_size, @@read_buffer_size, @@read_rnd_buffer_size,
	@@sort_buffer_size, @@tmp_table_size, @@max_heap_table_size;
`)
	return
}

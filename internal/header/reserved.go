package header

// ReservedInfoType maps the INFO keys reserved by VCFv4.3 to the types
// their definitions assign. The tables feed advisory warnings only; the
// declaration in the file always wins.
var ReservedInfoType = map[string]ValueType{
	"AA": String, "AC": Integer, "AF": Float, "AN": Integer,
	"BQ": Float, "CIGAR": String, "DB": Flag, "DP": Integer,
	"END": Integer, "H2": Flag, "H3": Flag, "MQ": Float,
	"MQ0": Integer, "NS": Integer, "SB": String, "SOMATIC": Flag,
	"VALIDATED": Flag, "1000G": Flag,
	// structural variant keys
	"IMPRECISE": Flag, "NOVEL": Flag, "SVTYPE": String, "SVLEN": Integer,
	"CIPOS": Integer, "CIEND": Integer, "HOMLEN": Integer, "HOMSEQ": String,
	"BKPTID": String, "MEINFO": String, "METRANS": String, "DGVID": String,
	"DBVARID": String, "DBRIPID": String, "MATEID": String, "PARID": String,
	"EVENT": String, "CILEN": Integer, "DPADJ": Integer, "CN": Integer,
	"CNADJ": Integer, "CICN": Integer, "CICNADJ": Integer,
}

// ReservedFormatType maps the reserved FORMAT keys to their VCFv4.3 types.
var ReservedFormatType = map[string]ValueType{
	"GT": String, "DP": Integer, "FT": String, "GL": Float,
	"GLE": String, "PL": Integer, "GP": Float, "GQ": Integer,
	"HQ": Integer, "PS": Integer, "PQ": Integer, "EC": Integer,
	"MQ": Integer,
	// structural variant keys
	"CN": Integer, "CNQ": Float, "CNL": Float, "NQ": Integer,
	"HAP": Integer, "AHAP": Integer,
}

// SingularMetadataKeys lists the generic keys expected at most once per
// file. The VCF format is loose about which lines may repeat; repeats of
// these are logged by the store, never rejected.
var SingularMetadataKeys = []string{"fileformat", "fileDate", "reference"}

// IsSingular reports whether key is expected at most once per file.
func IsSingular(key string) bool {
	for _, k := range SingularMetadataKeys {
		if k == key {
			return true
		}
	}
	return false
}

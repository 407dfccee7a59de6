// Package dmt holds the built-in VESA Display Monitor Timing mode table and
// the filter used to populate a connector's mode list from it.
package dmt

// ModeFlag mirrors the DRM mode-info flag bits (sync polarity, interlace).
type ModeFlag uint32

const (
	FlagPHSync ModeFlag = 1 << iota
	FlagNHSync
	FlagPVSync
	FlagNVSync
	FlagInterlace
)

// ModeType mirrors the DRM mode-info type bits.
type ModeType uint32

const (
	ModeTypeBuiltin ModeType = 1 << iota
	ModeTypeDriver
	ModeTypePreferred
)

// Mode is one entry of the built-in timing table, carrying the same fields
// as the wire mode-info record (see internal/uapi) before they are packed.
type Mode struct {
	Name string
	Type ModeType

	ClockKHz uint32

	HDisplay   uint16
	HSyncStart uint16
	HSyncEnd   uint16
	HTotal     uint16
	HSkew      uint16

	VDisplay   uint16
	VSyncStart uint16
	VSyncEnd   uint16
	VTotal     uint16
	VScan      uint16

	Flags ModeFlag
}

// Table is the full DMT mode table, transcribed from managarm's
// addDmtModes (core/drm/src/core.cpp). Every entry it contains is kept —
// filtering by maximum dimensions happens in Filter, not by trimming this
// table.
var Table = []Mode{
	{Name: "640x350", Type: ModeTypeDriver, ClockKHz: 31500, HDisplay: 640, HSyncStart: 672, HSyncEnd: 736, HTotal: 832, HSkew: 0, VDisplay: 350, VSyncStart: 382, VSyncEnd: 385, VTotal: 445, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "640x400", Type: ModeTypeDriver, ClockKHz: 31500, HDisplay: 640, HSyncStart: 672, HSyncEnd: 736, HTotal: 832, HSkew: 0, VDisplay: 400, VSyncStart: 401, VSyncEnd: 404, VTotal: 445, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "720x400", Type: ModeTypeDriver, ClockKHz: 35500, HDisplay: 720, HSyncStart: 756, HSyncEnd: 828, HTotal: 936, HSkew: 0, VDisplay: 400, VSyncStart: 401, VSyncEnd: 404, VTotal: 446, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "640x480", Type: ModeTypeDriver, ClockKHz: 25175, HDisplay: 640, HSyncStart: 656, HSyncEnd: 752, HTotal: 800, HSkew: 0, VDisplay: 480, VSyncStart: 490, VSyncEnd: 492, VTotal: 525, VScan: 0, Flags: FlagNHSync | FlagNVSync},
	{Name: "640x480", Type: ModeTypeDriver, ClockKHz: 31500, HDisplay: 640, HSyncStart: 664, HSyncEnd: 704, HTotal: 832, HSkew: 0, VDisplay: 480, VSyncStart: 489, VSyncEnd: 492, VTotal: 520, VScan: 0, Flags: FlagNHSync | FlagNVSync},
	{Name: "640x480", Type: ModeTypeDriver, ClockKHz: 31500, HDisplay: 640, HSyncStart: 656, HSyncEnd: 720, HTotal: 840, HSkew: 0, VDisplay: 480, VSyncStart: 481, VSyncEnd: 484, VTotal: 500, VScan: 0, Flags: FlagNHSync | FlagNVSync},
	{Name: "640x480", Type: ModeTypeDriver, ClockKHz: 36000, HDisplay: 640, HSyncStart: 696, HSyncEnd: 752, HTotal: 832, HSkew: 0, VDisplay: 480, VSyncStart: 481, VSyncEnd: 484, VTotal: 509, VScan: 0, Flags: FlagNHSync | FlagNVSync},
	{Name: "800x600", Type: ModeTypeDriver, ClockKHz: 36000, HDisplay: 800, HSyncStart: 824, HSyncEnd: 896, HTotal: 1024, HSkew: 0, VDisplay: 600, VSyncStart: 601, VSyncEnd: 603, VTotal: 625, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "800x600", Type: ModeTypeDriver, ClockKHz: 40000, HDisplay: 800, HSyncStart: 840, HSyncEnd: 968, HTotal: 1056, HSkew: 0, VDisplay: 600, VSyncStart: 601, VSyncEnd: 605, VTotal: 628, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "800x600", Type: ModeTypeDriver, ClockKHz: 50000, HDisplay: 800, HSyncStart: 856, HSyncEnd: 976, HTotal: 1040, HSkew: 0, VDisplay: 600, VSyncStart: 637, VSyncEnd: 643, VTotal: 666, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "800x600", Type: ModeTypeDriver, ClockKHz: 49500, HDisplay: 800, HSyncStart: 816, HSyncEnd: 896, HTotal: 1056, HSkew: 0, VDisplay: 600, VSyncStart: 601, VSyncEnd: 604, VTotal: 625, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "800x600", Type: ModeTypeDriver, ClockKHz: 56250, HDisplay: 800, HSyncStart: 832, HSyncEnd: 896, HTotal: 1048, HSkew: 0, VDisplay: 600, VSyncStart: 601, VSyncEnd: 604, VTotal: 631, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "800x600", Type: ModeTypeDriver, ClockKHz: 73250, HDisplay: 800, HSyncStart: 848, HSyncEnd: 880, HTotal: 960, HSkew: 0, VDisplay: 600, VSyncStart: 603, VSyncEnd: 607, VTotal: 636, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "848x480", Type: ModeTypeDriver, ClockKHz: 33750, HDisplay: 848, HSyncStart: 864, HSyncEnd: 976, HTotal: 1088, HSkew: 0, VDisplay: 480, VSyncStart: 486, VSyncEnd: 494, VTotal: 517, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1024x768i", Type: ModeTypeDriver, ClockKHz: 44900, HDisplay: 1024, HSyncStart: 1032, HSyncEnd: 1208, HTotal: 1264, HSkew: 0, VDisplay: 768, VSyncStart: 768, VSyncEnd: 776, VTotal: 817, VScan: 0, Flags: FlagPHSync | FlagPVSync | FlagInterlace},
	{Name: "1024x768", Type: ModeTypeDriver, ClockKHz: 65000, HDisplay: 1024, HSyncStart: 1048, HSyncEnd: 1184, HTotal: 1344, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 777, VTotal: 806, VScan: 0, Flags: FlagNHSync | FlagNVSync},
	{Name: "1024x768", Type: ModeTypeDriver, ClockKHz: 75000, HDisplay: 1024, HSyncStart: 1048, HSyncEnd: 1184, HTotal: 1328, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 777, VTotal: 806, VScan: 0, Flags: FlagNHSync | FlagNVSync},
	{Name: "1024x768", Type: ModeTypeDriver, ClockKHz: 78750, HDisplay: 1024, HSyncStart: 1040, HSyncEnd: 1136, HTotal: 1312, HSkew: 0, VDisplay: 768, VSyncStart: 769, VSyncEnd: 772, VTotal: 800, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1024x768", Type: ModeTypeDriver, ClockKHz: 94500, HDisplay: 1024, HSyncStart: 1072, HSyncEnd: 1168, HTotal: 1376, HSkew: 0, VDisplay: 768, VSyncStart: 769, VSyncEnd: 772, VTotal: 808, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1024x768", Type: ModeTypeDriver, ClockKHz: 115500, HDisplay: 1024, HSyncStart: 1072, HSyncEnd: 1104, HTotal: 1184, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 775, VTotal: 813, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1152x864", Type: ModeTypeDriver, ClockKHz: 108000, HDisplay: 1152, HSyncStart: 1216, HSyncEnd: 1344, HTotal: 1600, HSkew: 0, VDisplay: 864, VSyncStart: 865, VSyncEnd: 868, VTotal: 900, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1280x720", Type: ModeTypeDriver, ClockKHz: 74250, HDisplay: 1280, HSyncStart: 1390, HSyncEnd: 1430, HTotal: 1650, HSkew: 0, VDisplay: 720, VSyncStart: 725, VSyncEnd: 730, VTotal: 750, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1280x768", Type: ModeTypeDriver, ClockKHz: 68250, HDisplay: 1280, HSyncStart: 1328, HSyncEnd: 1360, HTotal: 1440, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 778, VTotal: 790, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1280x768", Type: ModeTypeDriver, ClockKHz: 79500, HDisplay: 1280, HSyncStart: 1344, HSyncEnd: 1472, HTotal: 1664, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 778, VTotal: 798, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1280x768", Type: ModeTypeDriver, ClockKHz: 102250, HDisplay: 1280, HSyncStart: 1360, HSyncEnd: 1488, HTotal: 1696, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 778, VTotal: 805, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1280x768", Type: ModeTypeDriver, ClockKHz: 117500, HDisplay: 1280, HSyncStart: 1360, HSyncEnd: 1496, HTotal: 1712, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 778, VTotal: 809, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1280x768", Type: ModeTypeDriver, ClockKHz: 140250, HDisplay: 1280, HSyncStart: 1328, HSyncEnd: 1360, HTotal: 1440, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 778, VTotal: 813, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1280x800", Type: ModeTypeDriver, ClockKHz: 71000, HDisplay: 1280, HSyncStart: 1328, HSyncEnd: 1360, HTotal: 1440, HSkew: 0, VDisplay: 800, VSyncStart: 803, VSyncEnd: 809, VTotal: 823, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1280x800", Type: ModeTypeDriver, ClockKHz: 83500, HDisplay: 1280, HSyncStart: 1352, HSyncEnd: 1480, HTotal: 1680, HSkew: 0, VDisplay: 800, VSyncStart: 803, VSyncEnd: 809, VTotal: 831, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1280x800", Type: ModeTypeDriver, ClockKHz: 106500, HDisplay: 1280, HSyncStart: 1360, HSyncEnd: 1488, HTotal: 1696, HSkew: 0, VDisplay: 800, VSyncStart: 803, VSyncEnd: 809, VTotal: 838, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1280x800", Type: ModeTypeDriver, ClockKHz: 122500, HDisplay: 1280, HSyncStart: 1360, HSyncEnd: 1496, HTotal: 1712, HSkew: 0, VDisplay: 800, VSyncStart: 803, VSyncEnd: 809, VTotal: 843, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1280x800", Type: ModeTypeDriver, ClockKHz: 146250, HDisplay: 1280, HSyncStart: 1328, HSyncEnd: 1360, HTotal: 1440, HSkew: 0, VDisplay: 800, VSyncStart: 803, VSyncEnd: 809, VTotal: 847, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1280x960", Type: ModeTypeDriver, ClockKHz: 108000, HDisplay: 1280, HSyncStart: 1376, HSyncEnd: 1488, HTotal: 1800, HSkew: 0, VDisplay: 960, VSyncStart: 961, VSyncEnd: 964, VTotal: 1000, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1280x960", Type: ModeTypeDriver, ClockKHz: 148500, HDisplay: 1280, HSyncStart: 1344, HSyncEnd: 1504, HTotal: 1728, HSkew: 0, VDisplay: 960, VSyncStart: 961, VSyncEnd: 964, VTotal: 1011, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1280x960", Type: ModeTypeDriver, ClockKHz: 175500, HDisplay: 1280, HSyncStart: 1328, HSyncEnd: 1360, HTotal: 1440, HSkew: 0, VDisplay: 960, VSyncStart: 963, VSyncEnd: 967, VTotal: 1017, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1280x1024", Type: ModeTypeDriver, ClockKHz: 108000, HDisplay: 1280, HSyncStart: 1328, HSyncEnd: 1440, HTotal: 1688, HSkew: 0, VDisplay: 1024, VSyncStart: 1025, VSyncEnd: 1028, VTotal: 1066, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1280x1024", Type: ModeTypeDriver, ClockKHz: 135000, HDisplay: 1280, HSyncStart: 1296, HSyncEnd: 1440, HTotal: 1688, HSkew: 0, VDisplay: 1024, VSyncStart: 1025, VSyncEnd: 1028, VTotal: 1066, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1280x1024", Type: ModeTypeDriver, ClockKHz: 157500, HDisplay: 1280, HSyncStart: 1344, HSyncEnd: 1504, HTotal: 1728, HSkew: 0, VDisplay: 1024, VSyncStart: 1025, VSyncEnd: 1028, VTotal: 1072, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1280x1024", Type: ModeTypeDriver, ClockKHz: 187250, HDisplay: 1280, HSyncStart: 1328, HSyncEnd: 1360, HTotal: 1440, HSkew: 0, VDisplay: 1024, VSyncStart: 1027, VSyncEnd: 1034, VTotal: 1084, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1360x768", Type: ModeTypeDriver, ClockKHz: 85500, HDisplay: 1360, HSyncStart: 1424, HSyncEnd: 1536, HTotal: 1792, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 777, VTotal: 795, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1360x768", Type: ModeTypeDriver, ClockKHz: 148250, HDisplay: 1360, HSyncStart: 1408, HSyncEnd: 1440, HTotal: 1520, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 776, VTotal: 813, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1366x768", Type: ModeTypeDriver, ClockKHz: 85500, HDisplay: 1366, HSyncStart: 1436, HSyncEnd: 1579, HTotal: 1792, HSkew: 0, VDisplay: 768, VSyncStart: 771, VSyncEnd: 774, VTotal: 798, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1366x768", Type: ModeTypeDriver, ClockKHz: 72000, HDisplay: 1366, HSyncStart: 1380, HSyncEnd: 1436, HTotal: 1500, HSkew: 0, VDisplay: 768, VSyncStart: 769, VSyncEnd: 772, VTotal: 800, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1400x1050", Type: ModeTypeDriver, ClockKHz: 101000, HDisplay: 1400, HSyncStart: 1448, HSyncEnd: 1480, HTotal: 1560, HSkew: 0, VDisplay: 1050, VSyncStart: 1053, VSyncEnd: 1057, VTotal: 1080, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1400x1050", Type: ModeTypeDriver, ClockKHz: 121750, HDisplay: 1400, HSyncStart: 1488, HSyncEnd: 1632, HTotal: 1864, HSkew: 0, VDisplay: 1050, VSyncStart: 1053, VSyncEnd: 1057, VTotal: 1089, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1400x1050", Type: ModeTypeDriver, ClockKHz: 156000, HDisplay: 1400, HSyncStart: 1504, HSyncEnd: 1648, HTotal: 1896, HSkew: 0, VDisplay: 1050, VSyncStart: 1053, VSyncEnd: 1057, VTotal: 1099, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1400x1050", Type: ModeTypeDriver, ClockKHz: 179500, HDisplay: 1400, HSyncStart: 1504, HSyncEnd: 1656, HTotal: 1912, HSkew: 0, VDisplay: 1050, VSyncStart: 1053, VSyncEnd: 1057, VTotal: 1105, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1400x1050", Type: ModeTypeDriver, ClockKHz: 208000, HDisplay: 1400, HSyncStart: 1448, HSyncEnd: 1480, HTotal: 1560, HSkew: 0, VDisplay: 1050, VSyncStart: 1053, VSyncEnd: 1057, VTotal: 1112, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1440x900", Type: ModeTypeDriver, ClockKHz: 88750, HDisplay: 1440, HSyncStart: 1488, HSyncEnd: 1520, HTotal: 1600, HSkew: 0, VDisplay: 900, VSyncStart: 903, VSyncEnd: 909, VTotal: 926, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1440x900", Type: ModeTypeDriver, ClockKHz: 106500, HDisplay: 1440, HSyncStart: 1520, HSyncEnd: 1672, HTotal: 1904, HSkew: 0, VDisplay: 900, VSyncStart: 903, VSyncEnd: 909, VTotal: 934, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1440x900", Type: ModeTypeDriver, ClockKHz: 136750, HDisplay: 1440, HSyncStart: 1536, HSyncEnd: 1688, HTotal: 1936, HSkew: 0, VDisplay: 900, VSyncStart: 903, VSyncEnd: 909, VTotal: 942, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1440x900", Type: ModeTypeDriver, ClockKHz: 157000, HDisplay: 1440, HSyncStart: 1544, HSyncEnd: 1696, HTotal: 1952, HSkew: 0, VDisplay: 900, VSyncStart: 903, VSyncEnd: 909, VTotal: 948, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1440x900", Type: ModeTypeDriver, ClockKHz: 182750, HDisplay: 1440, HSyncStart: 1488, HSyncEnd: 1520, HTotal: 1600, HSkew: 0, VDisplay: 900, VSyncStart: 903, VSyncEnd: 909, VTotal: 953, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1600x900", Type: ModeTypeDriver, ClockKHz: 108000, HDisplay: 1600, HSyncStart: 1624, HSyncEnd: 1704, HTotal: 1800, HSkew: 0, VDisplay: 900, VSyncStart: 901, VSyncEnd: 904, VTotal: 1000, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1600x1200", Type: ModeTypeDriver, ClockKHz: 162000, HDisplay: 1600, HSyncStart: 1664, HSyncEnd: 1856, HTotal: 2160, HSkew: 0, VDisplay: 1200, VSyncStart: 1201, VSyncEnd: 1204, VTotal: 1250, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1600x1200", Type: ModeTypeDriver, ClockKHz: 175500, HDisplay: 1600, HSyncStart: 1664, HSyncEnd: 1856, HTotal: 2160, HSkew: 0, VDisplay: 1200, VSyncStart: 1201, VSyncEnd: 1204, VTotal: 1250, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1600x1200", Type: ModeTypeDriver, ClockKHz: 189000, HDisplay: 1600, HSyncStart: 1664, HSyncEnd: 1856, HTotal: 2160, HSkew: 0, VDisplay: 1200, VSyncStart: 1201, VSyncEnd: 1204, VTotal: 1250, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1600x1200", Type: ModeTypeDriver, ClockKHz: 202500, HDisplay: 1600, HSyncStart: 1664, HSyncEnd: 1856, HTotal: 2160, HSkew: 0, VDisplay: 1200, VSyncStart: 1201, VSyncEnd: 1204, VTotal: 1250, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1600x1200", Type: ModeTypeDriver, ClockKHz: 229500, HDisplay: 1600, HSyncStart: 1664, HSyncEnd: 1856, HTotal: 2160, HSkew: 0, VDisplay: 1200, VSyncStart: 1201, VSyncEnd: 1204, VTotal: 1250, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "1600x1200", Type: ModeTypeDriver, ClockKHz: 268250, HDisplay: 1600, HSyncStart: 1648, HSyncEnd: 1680, HTotal: 1760, HSkew: 0, VDisplay: 1200, VSyncStart: 1203, VSyncEnd: 1207, VTotal: 1271, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1680x1050", Type: ModeTypeDriver, ClockKHz: 119000, HDisplay: 1680, HSyncStart: 1728, HSyncEnd: 1760, HTotal: 1840, HSkew: 0, VDisplay: 1050, VSyncStart: 1053, VSyncEnd: 1059, VTotal: 1080, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1680x1050", Type: ModeTypeDriver, ClockKHz: 146250, HDisplay: 1680, HSyncStart: 1784, HSyncEnd: 1960, HTotal: 2240, HSkew: 0, VDisplay: 1050, VSyncStart: 1053, VSyncEnd: 1059, VTotal: 1089, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1680x1050", Type: ModeTypeDriver, ClockKHz: 187000, HDisplay: 1680, HSyncStart: 1800, HSyncEnd: 1976, HTotal: 2272, HSkew: 0, VDisplay: 1050, VSyncStart: 1053, VSyncEnd: 1059, VTotal: 1099, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1680x1050", Type: ModeTypeDriver, ClockKHz: 214750, HDisplay: 1680, HSyncStart: 1808, HSyncEnd: 1984, HTotal: 2288, HSkew: 0, VDisplay: 1050, VSyncStart: 1053, VSyncEnd: 1059, VTotal: 1105, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1680x1050", Type: ModeTypeDriver, ClockKHz: 245500, HDisplay: 1680, HSyncStart: 1728, HSyncEnd: 1760, HTotal: 1840, HSkew: 0, VDisplay: 1050, VSyncStart: 1053, VSyncEnd: 1059, VTotal: 1112, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1792x1344", Type: ModeTypeDriver, ClockKHz: 204750, HDisplay: 1792, HSyncStart: 1920, HSyncEnd: 2120, HTotal: 2448, HSkew: 0, VDisplay: 1344, VSyncStart: 1345, VSyncEnd: 1348, VTotal: 1394, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1792x1344", Type: ModeTypeDriver, ClockKHz: 261000, HDisplay: 1792, HSyncStart: 1888, HSyncEnd: 2104, HTotal: 2456, HSkew: 0, VDisplay: 1344, VSyncStart: 1345, VSyncEnd: 1348, VTotal: 1417, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1792x1344", Type: ModeTypeDriver, ClockKHz: 333250, HDisplay: 1792, HSyncStart: 1840, HSyncEnd: 1872, HTotal: 1952, HSkew: 0, VDisplay: 1344, VSyncStart: 1347, VSyncEnd: 1351, VTotal: 1423, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1856x1392", Type: ModeTypeDriver, ClockKHz: 218250, HDisplay: 1856, HSyncStart: 1952, HSyncEnd: 2176, HTotal: 2528, HSkew: 0, VDisplay: 1392, VSyncStart: 1393, VSyncEnd: 1396, VTotal: 1439, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1856x1392", Type: ModeTypeDriver, ClockKHz: 288000, HDisplay: 1856, HSyncStart: 1984, HSyncEnd: 2208, HTotal: 2560, HSkew: 0, VDisplay: 1392, VSyncStart: 1393, VSyncEnd: 1396, VTotal: 1500, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1856x1392", Type: ModeTypeDriver, ClockKHz: 356500, HDisplay: 1856, HSyncStart: 1904, HSyncEnd: 1936, HTotal: 2016, HSkew: 0, VDisplay: 1392, VSyncStart: 1395, VSyncEnd: 1399, VTotal: 1474, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1920x1080", Type: ModeTypeDriver, ClockKHz: 148500, HDisplay: 1920, HSyncStart: 2008, HSyncEnd: 2052, HTotal: 2200, HSkew: 0, VDisplay: 1080, VSyncStart: 1084, VSyncEnd: 1089, VTotal: 1125, VScan: 0, Flags: FlagNHSync | FlagNVSync},
	{Name: "1920x1200", Type: ModeTypeDriver, ClockKHz: 154000, HDisplay: 1920, HSyncStart: 1968, HSyncEnd: 2000, HTotal: 2080, HSkew: 0, VDisplay: 1200, VSyncStart: 1203, VSyncEnd: 1209, VTotal: 1235, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1920x1200", Type: ModeTypeDriver, ClockKHz: 193250, HDisplay: 1920, HSyncStart: 2056, HSyncEnd: 2256, HTotal: 2592, HSkew: 0, VDisplay: 1200, VSyncStart: 1203, VSyncEnd: 1209, VTotal: 1245, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1920x1200", Type: ModeTypeDriver, ClockKHz: 245250, HDisplay: 1920, HSyncStart: 2056, HSyncEnd: 2264, HTotal: 2608, HSkew: 0, VDisplay: 1200, VSyncStart: 1203, VSyncEnd: 1209, VTotal: 1255, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1920x1200", Type: ModeTypeDriver, ClockKHz: 281250, HDisplay: 1920, HSyncStart: 2064, HSyncEnd: 2272, HTotal: 2624, HSkew: 0, VDisplay: 1200, VSyncStart: 1203, VSyncEnd: 1209, VTotal: 1262, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1920x1200", Type: ModeTypeDriver, ClockKHz: 317000, HDisplay: 1920, HSyncStart: 1968, HSyncEnd: 2000, HTotal: 2080, HSkew: 0, VDisplay: 1200, VSyncStart: 1203, VSyncEnd: 1209, VTotal: 1271, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "1920x1440", Type: ModeTypeDriver, ClockKHz: 234000, HDisplay: 1920, HSyncStart: 2048, HSyncEnd: 2256, HTotal: 2600, HSkew: 0, VDisplay: 1440, VSyncStart: 1441, VSyncEnd: 1444, VTotal: 1500, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1920x1440", Type: ModeTypeDriver, ClockKHz: 297000, HDisplay: 1920, HSyncStart: 2064, HSyncEnd: 2288, HTotal: 2640, HSkew: 0, VDisplay: 1440, VSyncStart: 1441, VSyncEnd: 1444, VTotal: 1500, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "1920x1440", Type: ModeTypeDriver, ClockKHz: 380500, HDisplay: 1920, HSyncStart: 1968, HSyncEnd: 2000, HTotal: 2080, HSkew: 0, VDisplay: 1440, VSyncStart: 1443, VSyncEnd: 1447, VTotal: 1525, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "2048x1152", Type: ModeTypeDriver, ClockKHz: 162000, HDisplay: 2048, HSyncStart: 2074, HSyncEnd: 2154, HTotal: 2250, HSkew: 0, VDisplay: 1152, VSyncStart: 1153, VSyncEnd: 1156, VTotal: 1200, VScan: 0, Flags: FlagPHSync | FlagPVSync},
	{Name: "2560x1600", Type: ModeTypeDriver, ClockKHz: 268500, HDisplay: 2560, HSyncStart: 2608, HSyncEnd: 2640, HTotal: 2720, HSkew: 0, VDisplay: 1600, VSyncStart: 1603, VSyncEnd: 1609, VTotal: 1646, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "2560x1600", Type: ModeTypeDriver, ClockKHz: 348500, HDisplay: 2560, HSyncStart: 2752, HSyncEnd: 3032, HTotal: 3504, HSkew: 0, VDisplay: 1600, VSyncStart: 1603, VSyncEnd: 1609, VTotal: 1658, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "2560x1600", Type: ModeTypeDriver, ClockKHz: 443250, HDisplay: 2560, HSyncStart: 2768, HSyncEnd: 3048, HTotal: 3536, HSkew: 0, VDisplay: 1600, VSyncStart: 1603, VSyncEnd: 1609, VTotal: 1672, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "2560x1600", Type: ModeTypeDriver, ClockKHz: 505250, HDisplay: 2560, HSyncStart: 2768, HSyncEnd: 3048, HTotal: 3536, HSkew: 0, VDisplay: 1600, VSyncStart: 1603, VSyncEnd: 1609, VTotal: 1682, VScan: 0, Flags: FlagNHSync | FlagPVSync},
	{Name: "2560x1600", Type: ModeTypeDriver, ClockKHz: 552750, HDisplay: 2560, HSyncStart: 2608, HSyncEnd: 2640, HTotal: 2720, HSkew: 0, VDisplay: 1600, VSyncStart: 1603, VSyncEnd: 1609, VTotal: 1694, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "4096x2160", Type: ModeTypeDriver, ClockKHz: 556744, HDisplay: 4096, HSyncStart: 4104, HSyncEnd: 4136, HTotal: 4176, HSkew: 0, VDisplay: 2160, VSyncStart: 2208, VSyncEnd: 2216, VTotal: 2222, VScan: 0, Flags: FlagPHSync | FlagNVSync},
	{Name: "4096x2160", Type: ModeTypeDriver, ClockKHz: 556188, HDisplay: 4096, HSyncStart: 4104, HSyncEnd: 4136, HTotal: 4176, HSkew: 0, VDisplay: 2160, VSyncStart: 2208, VSyncEnd: 2216, VTotal: 2222, VScan: 0, Flags: FlagPHSync | FlagNVSync},
}

// Filter returns every table entry that fits within maxWidth x maxHeight,
// in table order, matching addDmtModes's hdisplay/vdisplay bound check.
func Filter(maxWidth, maxHeight uint16) []Mode {
	out := make([]Mode, 0, len(Table))
	for _, m := range Table {
		if m.HDisplay <= maxWidth && m.VDisplay <= maxHeight {
			out = append(out, m)
		}
	}
	return out
}

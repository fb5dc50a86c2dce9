package hrv

// Таблица ручных исключений по результатам визуального просмотра ЭКГ
// и RR-интервалов. Данные калибровочные, не алгоритмические: интервалы
// времени суток, подлежащие удалению, для каждого испытуемого.
var manualExclusions = map[SubjectKey][]ExclusionRule{
	{Group: "control", Number: 1}: {
		{To: "10:01:35"},
		{From: "10:04:50", To: "10:05:00"},
		{From: "10:32:24", To: "10:32:28"},
		{From: "10:37:30", To: "10:37:33"},
		{From: "10:41:12", To: "10:41:14"},
		{From: "10:49:22", To: "10:49:30"},
		{From: "10:50:53", To: "10:51:00"},
		{From: "10:56:22", To: "10:56:29"},
		{From: "11:15:00", To: "11:15:03"},
		{From: "11:21:08", To: "11:21:12"},
		{From: "11:27:05", To: "11:27:08"},
		{From: "11:32:26", To: "11:32:30"},
		{From: "11:42:36", To: "11:42:40"},
		{From: "11:57:33", To: "11:57:36"},
	},
	{Group: "control", Number: 2}: {
		{To: "10:11:03"},
		{From: "10:15:00", To: "10:21:00"},
		{From: "10:35:43", To: "10:35:50"},
		{From: "10:50:17", To: "10:50:20"},
		{From: "10:50:37", To: "10:50:44"},
		{From: "10:53:25", To: "10:53:32"},
		{From: "11:06:50", To: "11:06:53"},
		{From: "11:23:06", To: "11:23:09"},
		{From: "11:37:04", To: "11:37:07"},
		{From: "11:41:19", To: "11:41:22"},
		{From: "11:53:07", To: "11:53:09"},
		{From: "12:06:39", To: "12:06:41"},
	},
	{Group: "control", Number: 5}: {
		{To: "10:08:46"},
		{From: "10:09:33", To: "10:09:38"},
		{From: "10:16:07", To: "10:16:10"},
		{From: "10:20:11", To: "10:20:13"},
		{From: "10:20:22", To: "10:20:25"},
		{From: "10:24:30", To: "10:24:33"},
		{From: "10:47:30", To: "10:47:33"},
		{From: "10:47:47", To: "10:47:50"},
		{From: "12:10:22", To: "12:10:28"},
	},
	{Group: "control", Number: 16}: {
		{To: "13:51:40"},
		{From: "13:52:25", To: "13:52:32"},
		{From: "14:17:10", To: "14:17:40"},
		{From: "14:18:01", To: "14:18:30"},
		{From: "14:18:47", To: "14:19:22"},
		{From: "14:53:47", To: "14:53:55"},
		{From: "14:54:05", To: "14:54:11"},
	},
	{Group: "control", Number: 18}: {
		{To: "11:44:32"},
		{From: "12:09:06", To: "12:09:08"},
		{From: "12:12:18", To: "12:12:22"},
		{From: "12:33:03", To: "12:33:07"},
		{From: "12:59:13", To: "12:59:19"},
		{From: "12:59:27", To: "12:59:34"},
		{From: "13:04:41", To: "13:04:45"},
		{From: "13:18:03", To: "13:18:05"},
		{From: "13:21:37", To: "13:21:39"},
	},
	{Group: "control", Number: 19}: {
		{To: "14:05:34"},
		{From: "14:06:58", To: "14:07:00"},
		{From: "14:07:09", To: "14:07:11"},
		{From: "14:07:18", To: "14:07:20"},
		{From: "14:11:12", To: "14:11:13"},
		{From: "14:11:43", To: "14:11:45"},
		{From: "14:12:00", To: "14:12:02"},
		{From: "14:12:27", To: "14:12:29"},
		{From: "14:13:04", To: "14:13:05"},
		{From: "14:14:05", To: "14:14:07"},
		{From: "14:14:27", To: "14:14:28"},
		{From: "14:14:38", To: "14:14:39"},
		{From: "14:14:48", To: "14:14:49"},
		{From: "14:15:38", To: "14:15:42"},
		{From: "14:15:47", To: "14:15:49"},
		{From: "14:23:03", To: "14:23:05"},
		{From: "14:23:35", To: "14:23:36"},
		{From: "14:23:48", To: "14:23:50"},
		{From: "14:23:57", To: "14:23:59"},
		{From: "14:24:02", To: "14:24:03"},
		{From: "14:24:19", To: "14:24:20"},
		{From: "14:24:26", To: "14:24:28"},
		{From: "14:25:13", To: "14:25:14"},
		{From: "14:25:17", To: "14:25:19"},
		{From: "14:30:25", To: "14:30:26"},
		{From: "14:30:43", To: "14:30:45"},
		{From: "14:31:09", To: "14:31:11"},
		{From: "14:31:41", To: "14:31:42"},
		{From: "14:32:26", To: "14:32:28"},
		{From: "14:32:38", To: "14:32:39"},
		{From: "14:37:41", To: "14:37:42"},
		{From: "14:38:14", To: "14:38:15"},
		{From: "14:38:36", To: "14:38:38"},
		{From: "14:38:57", To: "14:38:59"},
		{From: "14:39:40", To: "14:39:42"},
		{From: "14:39:46", To: "14:39:48"},
		{From: "14:42:02", To: "14:42:04"},
		{From: "14:43:27", To: "14:43:29"},
		{From: "14:44:09", To: "14:44:11"},
		{From: "14:44:42", To: "14:44:43"},
		{From: "14:48:27", To: "14:48:29"},
		{From: "14:49:18", To: "14:49:19"},
		{From: "14:52:15", To: "14:52:17"},
		{From: "14:52:48", To: "14:52:50"},
		{From: "14:53:24", To: "14:53:26"},
		{From: "14:53:57", To: "14:53:59"},
		{From: "14:56:35", To: "14:56:36"},
		{From: "14:57:27", To: "14:57:29"},
		{From: "14:57:39", To: "14:57:40"},
		{From: "14:58:03", To: "14:58:07"},
		{From: "14:58:42", To: "14:58:44"},
		{From: "15:09:25", To: "15:09:27"},
		{From: "15:09:29", To: "15:09:30"},
		{From: "15:09:55", To: "15:09:57"},
		{From: "15:10:11", To: "15:10:12"},
		{From: "15:11:02", To: "15:11:03"},
		{From: "15:11:14", To: "15:11:15"},
		{From: "15:11:41", To: "15:11:43"},
		{From: "15:12:02", To: "15:12:03"},
		{From: "15:12:08", To: "15:12:09"},
		{From: "15:12:50", To: "15:12:51"},
		{From: "15:13:30", To: "15:13:31"},
		{From: "15:13:59", To: "15:14:00"},
		{From: "15:14:43", To: "15:14:44"},
		{From: "15:15:14", To: "15:15:16"},
		{From: "15:15:53", To: "15:15:54"},
		{From: "15:17:23", To: "15:17:25"},
		{From: "15:17:32", To: "15:17:33"},
		{From: "15:18:41", To: "15:18:42"},
		{From: "15:20:02", To: "15:20:03"},
		{From: "15:20:54", To: "15:20:55"},
		{From: "15:21:17", To: "15:21:19"},
		{From: "15:21:52", To: "15:21:53"},
		{From: "15:22:13", To: "15:22:14"},
		{From: "15:23:35", To: "15:23:37"},
		{From: "15:24:42", To: "15:24:43"},
		{From: "15:25:23", To: "15:25:24"},
		{From: "15:26:00", To: "15:26:01"},
		{From: "15:29:28", To: "15:29:29"},
		{From: "15:33:23", To: "15:33:24"},
		{From: "15:41:04", To: "15:41:05"},
		{From: "15:41:35", To: "15:41:36"},
		{From: "15:42:22", To: "15:42:23"},
		{From: "15:42:50", To: "15:42:52"},
		{From: "15:43:08", To: "15:43:09"},
		{From: "15:43:41", To: "15:43:42"},
		{From: "15:43:51", To: "15:43:53"},
		{From: "15:44:05", To: "15:44:06"},
		{From: "15:44:42", To: "15:44:44"},
		{From: "15:45:29", To: "15:45:30"},
		{From: "15:45:59", To: "15:46:00"},
		{From: "15:46:25", To: "15:46:26"},
		{From: "15:46:44", To: "15:46:45"},
		{From: "15:47:04", To: "15:47:05"},
		{From: "15:47:08", To: "15:47:10"},
		{From: "15:47:26", To: "15:47:28"},
		{From: "15:47:36", To: "15:47:37"},
		{From: "15:47:53", To: "15:47:55"},
		{From: "15:48:20", To: "15:48:22"},
		{From: "15:48:25", To: "15:48:26"},
		{From: "15:48:49", To: "15:48:51"},
		{From: "15:49:45", To: "15:49:46"},
	},
	{Group: "control", Number: 20}: {
		{To: "12:54:30"},
	},
	{Group: "control", Number: 21}: {
		{To: "13:00:20"},
		{From: "14:04:21", To: "14:04:44"},
		{From: "14:17:33", To: "14:17:57"},
	},
	{Group: "control", Number: 22}: {
		{To: "15:59:50"},
	},
	{Group: "control", Number: 24}: {
		{To: "09:44:25"},
		{From: "09:45:32", To: "09:45:37"},
		{From: "09:46:08", To: "09:46:12"},
		{From: "09:59:38", To: "09:59:40"},
		{From: "10:05:15", To: "10:05:30"},
		{From: "10:06:57", To: "10:07:02"},
		{From: "10:24:00", To: "10:24:15"},
		{From: "10:27:31", To: "10:27:34"},
		{From: "10:27:38", To: "10:27:41"},
		{From: "10:30:20", To: "10:30:32"},
		{From: "10:44:43", To: "10:44:44"},
		{From: "10:58:00", To: "10:58:08"},
		{From: "11:01:21", To: "11:01:26"},
	},
	{Group: "control", Number: 25}: {
		{To: "10:00:55"},
		{From: "10:02:30", To: "10:02:52"},
		{From: "10:15:25", To: "10:15:30"},
		{From: "10:35:54", To: "10:35:58"},
		{From: "10:57:28", To: "10:57:35"},
		{From: "11:15:20", To: "11:15:25"},
		{From: "11:29:53", To: "11:30:00"},
	},
	{Group: "control", Number: 26}: {
		{From: "11:18:00", To: "11:18:10"},
		{From: "11:25:15", To: "11:25:30"},
		{From: "11:25:36", To: "11:25:42"},
		{From: "11:39:54", To: "11:39:58"},
		{From: "11:56:56", To: "11:57:00"},
		{From: "12:03:26", To: "12:03:32"},
		{From: "12:41:50", To: "12:41:53"},
	},
	{Group: "control", Number: 27}: {
		{To: "16:08:08"},
		{From: "16:10:10", To: "16:10:15"},
		{From: "16:11:23", To: "16:11:30"},
		{From: "16:20:15", To: "16:20:23"},
		{From: "16:23:20", To: "16:23:25"},
		{From: "16:53:40", To: "16:53:50"},
		{From: "16:56:04", To: "16:56:08"},
		{From: "16:56:40", To: "16:56:43"},
		{From: "16:58:34", To: "16:58:35"},
		{From: "17:01:23", To: "17:01:28"},
		{From: "17:05:14", To: "17:05:20"},
		{From: "17:10:33", To: "17:11:28"},
		{From: "17:14:11", To: "17:14:18"},
		{From: "17:25:44", To: "17:25:50"},
		{From: "17:29:00", To: "17:29:05"},
	},
	{Group: "control", Number: 28}: {
		{To: "11:07:50"},
		{From: "11:12:32", To: "11:12:35"},
		{From: "11:13:00", To: "11:13:05"},
		{From: "11:13:22", To: "11:13:27"},
		{From: "11:18:20", To: "11:18:25"},
		{From: "11:18:46", To: "11:18:50"},
		{From: "11:19:35", To: "11:19:40"},
		{From: "11:30:48", To: "11:30:55"},
		{From: "11:42:41", To: "11:42:45"},
		{From: "11:43:35", To: "11:43:42"},
		{From: "11:46:52", To: "11:47:15"},
		{From: "12:19:13", To: "12:19:18"},
		{From: "12:22:52", To: "12:22:57"},
		{From: "12:23:55", To: "12:24:00"},
		{From: "12:24:25", To: "12:24:30"},
		{From: "12:24:42", To: "12:24:47"},
		{From: "12:25:35", To: "12:25:40"},
		{From: "12:29:52", To: "12:29:58"},
		{From: "12:30:20", To: "12:30:40"},
		{From: "12:32:20", To: "12:32:25"},
		{From: "12:32:52", To: "12:33:10"},
		{From: "12:38:04", To: "12:38:10"},
	},
	{Group: "control", Number: 29}: {
		{To: "13:59:22"},
		{From: "13:59:38", To: "13:59:44"},
		{From: "13:59:50", To: "14:00:00"},
		{From: "14:00:13", To: "14:00:38"},
		{From: "14:01:10", To: "14:01:20"},
		{From: "14:22:57", To: "14:23:05"},
		{From: "14:34:06", To: "14:34:09"},
		{From: "14:44:37", To: "14:44:40"},
		{From: "14:54:20", To: "14:54:43"},
		{From: "14:56:32", To: "14:56:40"},
		{From: "15:03:11", To: "15:03:13"},
		{From: "15:16:28", To: "15:16:32"},
		{From: "15:24:52", To: "15:24:55"},
	},
	{Group: "control", Number: 30}: {
		{To: "14:11:45"},
		{From: "14:11:55", To: "14:12:01"},
		{From: "14:12:28", To: "14:12:30"},
		{From: "14:14:33", To: "14:14:35"},
		{From: "14:32:03", To: "14:32:10"},
		{From: "14:44:04", To: "14:44:12"},
		{From: "14:58:34", To: "14:58:39"},
		{From: "15:18:50", To: "15:19:08"},
		{From: "15:30:25", To: "15:30:30"},
	},
	{Group: "control", Number: 31}: {
		{To: "11:13:46"},
		{From: "11:23:00", To: "11:26:41"},
		{From: "11:27:05", To: "11:27:18"},
		{From: "12:27:47"},
	},
	{Group: "control", Number: 32}: {
		{To: "11:06:25"},
		{From: "11:07:55", To: "11:08:00"},
		{From: "11:11:03", To: "11:11:16"},
		{From: "11:14:33", To: "11:14:49"},
		{From: "11:17:10", To: "11:17:20"},
		{From: "11:17:30", To: "11:17:42"},
		{From: "11:17:52", To: "11:18:10"},
		{From: "11:19:10", To: "11:19:45"},
		{From: "11:20:05", To: "11:20:15"},
		{From: "11:20:52", To: "11:20:57"},
		{From: "11:21:00", To: "11:21:08"},
		{From: "11:21:13", To: "11:21:18"},
		{From: "11:21:22", To: "11:21:25"},
		{From: "11:21:32", To: "11:21:35"},
		{From: "11:22:00", To: "11:22:04"},
		{From: "11:22:13", To: "11:22:15"},
		{From: "11:25:38", To: "11:25:45"},
		{From: "11:25:52", To: "11:25:57"},
		{From: "11:26:15", To: "11:26:22"},
		{From: "11:26:57", To: "11:27:00"},
		{From: "11:42:28", To: "11:42:32"},
		{From: "11:54:31", To: "11:54:35"},
		{From: "12:14:30", To: "12:14:40"},
		{From: "12:19:38", To: "12:19:42"},
		{From: "12:25:38"},
	},
	{Group: "control", Number: 33}: {
		{To: "11:11:20"},
		{From: "11:11:36", To: "11:11:38"},
		{From: "11:11:46", To: "11:11:49"},
		{From: "11:11:57", To: "11:12:00"},
		{From: "11:13:17", To: "11:13:24"},
		{From: "11:13:38", To: "11:13:42"},
		{From: "11:13:45", To: "11:14:00"},
		{From: "11:14:30", To: "11:14:50"},
		{From: "11:15:08", To: "11:15:12"},
		{From: "11:15:15", To: "11:15:22"},
		{From: "11:15:50", To: "11:16:00"},
		{From: "11:16:09", To: "11:16:35"},
		{From: "11:18:35", To: "11:18:45"},
		{From: "11:18:50", To: "11:18:54"},
		{From: "11:19:20", To: "11:19:30"},
		{From: "11:19:45", To: "11:19:52"},
		{From: "11:21:05", To: "11:21:25"},
		{From: "11:21:42", To: "11:22:07"},
		{From: "11:22:50", To: "11:22:55"},
		{From: "11:26:25", To: "11:26:35"},
		{From: "11:27:35", To: "11:27:41"},
		{From: "11:27:52", To: "11:27:57"},
		{From: "11:33:00", To: "11:33:22"},
		{From: "11:35:28", To: "11:35:52"},
		{From: "11:40:52", To: "11:40:55"},
		{From: "11:47:00", To: "11:47:12"},
		{From: "11:49:20", To: "11:49:30"},
		{From: "11:50:10", To: "11:50:40"},
		{From: "11:53:10", To: "11:53:17"},
		{From: "11:53:50", To: "11:54:00"},
		{From: "12:00:40", To: "12:00:50"},
		{From: "12:11:44", To: "12:11:49"},
		{From: "12:19:37", To: "12:19:50"},
	},
	{Group: "control", Number: 34}: {
		{To: "10:17:15"},
		{From: "10:17:38", To: "10:17:42"},
		{From: "10:18:22", To: "10:18:30"},
		{From: "10:18:40", To: "10:18:43"},
		{From: "10:19:38", To: "10:19:41"},
		{From: "10:20:00", To: "10:20:28"},
		{From: "10:32:25", To: "10:32:28"},
		{From: "10:44:24", To: "10:44:28"},
		{From: "11:26:47", To: "11:26:50"},
		{From: "11:40:28"},
	},
	{Group: "control", Number: 35}: {
		{To: "11:24:12"},
		{From: "11:24:54", To: "11:25:05"},
		{From: "11:25:17", To: "11:25:25"},
		{From: "11:27:46", To: "11:27:49"},
		{From: "11:28:22", To: "11:28:25"},
		{From: "11:33:54", To: "11:34:00"},
		{From: "11:36:30", To: "11:36:37"},
		{From: "12:36:40", To: "12:36:42"},
		{From: "12:48:48"},
	},
	{Group: "control", Number: 36}: {
		{To: "11:22:45"},
		{From: "11:24:13", To: "11:24:16"},
		{From: "11:38:27", To: "11:38:30"},
		{From: "12:20:50", To: "12:20:55"},
		{From: "12:09:47", To: "12:09:50"},
		{From: "12:35:12", To: "12:35:16"},
	},
	{Group: "control", Number: 37}: {
		{To: "12:23:33"},
		{From: "12:27:19", To: "12:27:28"},
		{From: "13:16:47", To: "13:16:50"},
		{From: "13:28:42", To: "13:28:47"},
		{From: "13:32:57", To: "13:33:01"},
		{From: "13:39:23", To: "13:39:27"},
		{From: "13:42:13", To: "13:42:16"},
		{From: "13:53:12", To: "13:53:22"},
		{From: "13:54:00", To: "13:54:10"},
		{From: "13:54:30", To: "13:54:35"},
	},
	{Group: "control", Number: 38}: {
		{To: "09:58:00"},
		{From: "10:01:24", To: "10:01:28"},
		{From: "10:12:48", To: "10:12:55"},
		{From: "10:16:45", To: "10:16:48"},
		{From: "10:21:17", To: "10:21:20"},
		{From: "10:32:34", To: "10:32:39"},
		{From: "10:32:41", To: "10:32:44"},
		{From: "10:34:40", To: "10:34:43"},
		{From: "10:39:15", To: "10:39:24"},
		{From: "11:32:06", To: "11:32:09"},
		{From: "11:43:37", To: "11:43:39"},
		{From: "12:08:24"},
	},
	{Group: "control", Number: 39}: {
		{To: "10:04:00"},
		{From: "10:08:55", To: "10:09:10"},
		{From: "10:14:10", To: "10:14:20"},
		{From: "10:17:45", To: "10:18:00"},
		{From: "10:22:00", To: "10:22:15"},
		{From: "10:22:30", To: "10:23:00"},
		{From: "10:25:50", To: "10:26:15"},
		{From: "10:34:24", To: "10:35:15"},
		{From: "10:40:00", To: "10:40:20"},
		{From: "10:51:55", To: "10:52:15"},
		{From: "10:52:30", To: "10:53:30"},
		{From: "10:58:40", To: "10:58:43"},
		{From: "11:01:00", To: "11:01:08"},
		{From: "11:01:23", To: "11:01:33"},
		{From: "11:02:03", To: "11:02:08"},
		{From: "11:06:06", To: "11:06:09"},
		{From: "11:09:50", To: "11:09:54"},
		{From: "11:21:50", To: "11:22:30"},
		{From: "11:23:45", To: "11:24:20"},
		{From: "11:24:45", To: "11:24:55"},
		{From: "11:25:50", To: "11:26:00"},
		{From: "11:27:35", To: "11:27:45"},
		{From: "11:34:30", To: "11:34:55"},
		{From: "11:38:35", To: "11:38:50"},
		{From: "11:55:00", To: "11:55:40"},
		{From: "11:58:00", To: "11:58:15"},
	},
	{Group: "control", Number: 40}: {
		{To: "09:20:50"},
		{From: "09:32:20", To: "09:32:30"},
		{From: "09:40:20", To: "09:40:40"},
		{From: "09:51:15", To: "09:51:40"},
		{From: "09:54:07", To: "09:54:10"},
		{From: "09:57:17", To: "09:57:19"},
		{From: "09:57:54", To: "09:57:55"},
		{From: "09:59:55", To: "10:00:15"},
		{From: "10:15:33", To: "10:15:42"},
		{From: "10:36:15", To: "10:36:28"},
		{From: "10:44:42", To: "10:44:43"},
		{From: "10:47:18", To: "10:47:21"},
		{From: "10:49:48", To: "10:49:49"},
		{From: "10:54:51", To: "10:54:53"},
		{From: "10:56:13", To: "10:56:14"},
		{From: "10:57:50", To: "10:57:57"},
		{From: "10:58:07", To: "10:58:13"},
		{From: "11:17:58", To: "11:18:06"},
		{From: "11:34:54", To: "11:34:59"},
		{From: "11:44:25", To: "11:44:30"},
		{From: "11:44:46", To: "11:44:51"},
		{From: "11:46:46", To: "11:46:48"},
	},
	{Group: "control", Number: 41}: {
		{To: "10:19:08"},
		{From: "10:43:01", To: "10:43:04"},
		{From: "10:43:11", To: "10:43:13"},
		{From: "10:50:10", To: "10:50:13"},
		{From: "10:54:59", To: "10:55:01"},
		{From: "10:57:00", To: "10:57:07"},
		{From: "10:57:14", To: "10:57:16"},
		{From: "11:21:21", To: "11:21:24"},
		{From: "11:27:30", To: "11:27:33"},
		{From: "11:29:11", To: "11:29:16"},
		{From: "11:42:25", To: "11:42:28"},
		{From: "11:54:07", To: "11:54:08"},
		{From: "11:54:26", To: "11:54:28"},
		{From: "11:58:43", To: "11:58:46"},
		{From: "12:04:42", To: "12:04:45"},
		{From: "12:07:55", To: "12:07:59"},
		{From: "12:08:33", To: "12:08:36"},
	},
	{Group: "control", Number: 42}: {
		{To: "09:03:15"},
		{From: "09:07:03", To: "09:07:35"},
		{From: "09:11:22", To: "09:11:29"},
		{From: "09:18:33", To: "09:18:39"},
		{From: "09:20:27", To: "09:20:30"},
		{From: "09:23:54", To: "09:24:00"},
		{From: "09:36:44", To: "09:36:50"},
		{From: "09:39:29", To: "09:39:33"},
		{From: "09:47:00", To: "09:47:50"},
		{From: "09:49:10", To: "09:49:30"},
		{From: "09:50:08", To: "09:50:15"},
		{From: "09:50:30", To: "09:50:35"},
		{From: "09:50:45", To: "09:50:53"},
		{From: "10:03:35", To: "10:03:46"},
		{From: "10:03:58", To: "10:04:02"},
		{From: "10:08:35", To: "10:08:40"},
		{From: "10:09:33", To: "10:09:39"},
		{From: "10:13:05", To: "10:13:10"},
		{From: "10:13:40", To: "10:13:45"},
		{From: "10:13:55", To: "10:14:00"},
		{From: "10:18:25", To: "10:18:30"},
		{From: "10:21:45", To: "10:21:52"},
		{From: "10:29:45", To: "10:29:46"},
		{From: "10:30:20", To: "10:30:32"},
		{From: "10:39:03", To: "10:39:07"},
		{From: "10:39:38", To: "10:39:42"},
		{From: "10:41:11", To: "10:41:19"},
		{From: "10:48:15", To: "10:48:20"},
		{From: "10:50:10", To: "10:50:20"},
		{From: "10:50:40", To: "10:50:52"},
		{From: "10:51:35", To: "10:51:40"},
		{From: "10:51:52", To: "10:52:00"},
		{From: "11:05:00"},
	},
	{Group: "control", Number: 43}: {
		{To: "15:12:00"},
		{From: "16:32:04", To: "16:32:08"},
		{From: "17:00:03", To: "17:07:08"},
		{From: "17:12:00"},
	},
	{Group: "control", Number: 44}: {
		{To: "15:07:00"},
		{From: "15:09:27", To: "15:09:32"},
		{From: "15:09:37", To: "15:09:40"},
		{From: "15:22:17", To: "15:22:20"},
		{From: "15:31:40", To: "15:32:00"},
		{From: "15:37:10", To: "15:37:28"},
		{From: "15:38:00", To: "15:38:08"},
		{From: "15:39:52", To: "15:39:58"},
		{From: "15:44:10", To: "15:44:28"},
		{From: "16:00:03", To: "16:00:08"},
		{From: "16:00:35", To: "16:00:38"},
		{From: "16:06:45", To: "16:06:50"},
		{From: "16:07:14", To: "16:07:17"},
		{From: "16:07:30", To: "16:07:33"},
		{From: "16:13:22", To: "16:13:25"},
		{From: "16:15:27", To: "16:15:30"},
		{From: "16:15:49", To: "16:15:52"},
		{From: "16:26:32", To: "16:26:35"},
		{From: "16:26:44", To: "16:26:48"},
		{From: "16:31:25", To: "16:31:32"},
		{From: "16:32:55", To: "16:33:00"},
		{From: "16:33:17", To: "16:33:34"},
		{From: "16:39:04", To: "16:39:08"},
		{From: "16:43:04", To: "16:43:06"},
		{From: "16:46:23", To: "16:46:55"},
		{From: "16:53:00", To: "16:53:05"},
		{From: "16:55:51", To: "16:55:53"},
		{From: "16:59:55", To: "17:00:20"},
		{From: "17:04:10", To: "17:04:45"},
		{From: "17:05:13", To: "17:05:22"},
		{From: "17:06:38", To: "17:06:42"},
		{From: "17:12:00"},
	},
	{Group: "control", Number: 45}: {
		{To: "11:12:56"},
		{From: "11:25:40", To: "11:25:50"},
		{From: "12:11:11", To: "12:11:14"},
		{From: "12:11:31", To: "12:11:36"},
		{From: "12:11:55", To: "12:11:58"},
		{From: "12:12:03", To: "12:12:08"},
		{From: "12:13:52", To: "12:14:03"},
		{From: "12:17:40", To: "12:18:06"},
	},
	{Group: "control", Number: 46}: {
		{To: "11:08:40"},
		{From: "11:09:15", To: "11:09:50"},
		{From: "11:14:12", To: "11:14:16"},
		{From: "11:18:37", To: "11:18:53"},
		{From: "11:22:29", To: "11:22:32"},
		{From: "11:48:52", To: "11:49:00"},
		{From: "11:50:02", To: "11:50:12"},
		{From: "11:52:20", To: "11:52:30"},
		{From: "12:13:15", To: "12:13:20"},
		{From: "12:35:51", To: "12:36:00"},
		{From: "12:36:10", To: "12:36:15"},
		{From: "12:37:14", To: "12:37:18"},
		{From: "12:43:00", To: "12:43:10"},
		{From: "12:43:50", To: "12:43:55"},
		{From: "12:46:32", To: "12:46:36"},
	},
	{Group: "control", Number: 47}: {
		{To: "12:35:30"},
		{From: "12:35:52", To: "12:35:55"},
		{From: "12:36:46", To: "12:36:50"},
		{From: "12:38:37", To: "12:38:43"},
		{From: "12:38:55", To: "12:39:06"},
		{From: "12:46:02", To: "12:46:06"},
		{From: "12:47:35", To: "12:47:40"},
		{From: "12:48:36", To: "12:48:42"},
		{From: "12:51:22", To: "12:51:26"},
		{From: "12:51:45", To: "12:51:48"},
		{From: "12:51:57", To: "12:52:00"},
		{From: "12:52:07", To: "12:52:10"},
		{From: "12:53:33", To: "12:53:37"},
		{From: "12:54:30", To: "12:54:37"},
		{From: "12:54:51", To: "12:54:55"},
		{From: "13:04:08", To: "13:04:14"},
		{From: "13:04:38", To: "13:04:40"},
		{From: "13:08:00", To: "13:08:22"},
		{From: "13:09:42", To: "13:10:19"},
		{From: "13:20:50.8", To: "13:20:54"},
		{From: "13:22:47", To: "13:22:50"},
		{From: "13:26:42", To: "13:27:10"},
		{From: "13:38:18", To: "13:38:25"},
		{From: "13:40:23", To: "13:40:26"},
		{From: "13:41:35", To: "13:41:38"},
		{From: "13:42:27", To: "13:42:42"},
		{From: "13:42:55", To: "13:43:00"},
		{From: "13:44:00", To: "13:44:40"},
		{From: "13:45:20", To: "13:45:25"},
		{From: "13:45:28", To: "13:45:50"},
		{From: "13:57:58", To: "13:58:01"},
		{From: "14:06:39", To: "14:06:41"},
		{From: "14:37:01", To: "14:37:04"},
	},
	{Group: "treatment", Number: 1}: {
		{To: "12:43:35"},
		{From: "13:37:42", To: "13:37:52"},
		{From: "13:38:20", To: "13:38:28"},
		{From: "13:48:15", To: "13:48:30"},
		{From: "13:54:40", To: "13:54:45"},
	},
	{Group: "treatment", Number: 2}: {
		{From: "09:04:46", To: "09:04:48"},
		{From: "09:12:00", To: "09:12:05"},
		{From: "09:25:14", To: "09:25:18"},
		{From: "09:31:10", To: "09:31:13"},
		{From: "09:32:50", To: "09:32:55"},
		{From: "09:33:22", To: "09:33:25"},
		{From: "09:34:54", To: "09:34:56"},
		{From: "09:56:10", To: "09:56:45"},
	},
	{Group: "treatment", Number: 3}: {
		{From: "08:20:13", To: "08:20:30"},
		{From: "08:22:45", To: "08:22:57"},
		{From: "08:24:13", To: "08:24:18"},
		{From: "08:24:43", To: "08:24:48"},
		{From: "08:26:09", To: "08:26:11"},
		{From: "08:58:29", To: "08:58:30"},
		{From: "09:11:35", To: "09:11:40"},
		{From: "09:38:19", To: "09:38:23"},
		{From: "09:43:28", To: "09:43:31"},
		{From: "09:49:35", To: "09:49:40"},
		{From: "09:50:58", To: "09:51:05"},
	},
	{Group: "treatment", Number: 7}: {
		{From: "12:36:28", To: "12:36:31"},
		{From: "12:39:38", To: "12:39:40"},
		{From: "14:00:40", To: "14:00:45"},
	},
	{Group: "treatment", Number: 8}: {
		{From: "12:40:17", To: "12:40:23"},
	},
	{Group: "treatment", Number: 9}: {
		{From: "11:53:02", To: "11:53:04"},
		{From: "12:52:30", To: "12:52:40"},
		{From: "12:58:31", To: "12:58:35"},
		{From: "13:02:05", To: "13:02:10"},
		{From: "13:02:20", To: "13:02:26"},
	},
	{Group: "treatment", Number: 13}: {
		{From: "12:22:38", To: "12:22:40"},
		{From: "12:24:50", To: "12:24:52"},
		{From: "12:28:55", To: "12:28:58"},
		{From: "12:29:17", To: "12:29:20"},
		{From: "12:40:55", To: "12:41:10"},
		{From: "12:53:15", To: "12:53:20"},
		{From: "13:29:40", To: "13:29:50"},
	},
	{Group: "treatment", Number: 15}: {
		{From: "12:10:28", To: "12:11:00"},
		{From: "12:13:00", To: "12:13:15"},
		{From: "12:16:35", To: "12:16:55"},
		{From: "12:21:05", To: "12:21:55"},
		{From: "12:30:34", To: "12:31:30"},
		{From: "12:49:18", To: "12:50:50"},
		{From: "13:03:25", To: "13:03:41"},
		{From: "13:37:00", To: "13:37:10"},
		{From: "13:37:45", To: "13:38:00"},
		{From: "13:39:38", To: "13:39:42"},
		{From: "13:51:17", To: "13:51:20"},
		{From: "13:51:24", To: "13:51:28"},
		{From: "13:51:35", To: "13:51:40"},
		{From: "13:53:06", To: "13:53:08"},
		{From: "13:57:17", To: "13:57:19"},
	},
	{Group: "treatment", Number: 16}: {
		{From: "12:04:37", To: "12:05:00"},
		{From: "12:06:52", To: "12:07:00"},
		{From: "12:19:15", To: "12:19:20"},
		{From: "12:29:23", To: "12:29:25"},
		{From: "13:32:00"},
	},
	{Group: "treatment", Number: 17}: {
		{From: "12:01:38", To: "12:01:43"},
		{From: "12:01:47", To: "12:01:57"},
		{From: "12:02:10", To: "12:02:15"},
		{From: "12:07:15", To: "12:07:42"},
		{From: "12:10:09", To: "12:10:11"},
		{From: "12:22:30", To: "12:22:37"},
		{From: "12:22:55", To: "12:23:05"},
		{From: "12:23:15", To: "12:23:27"},
		{From: "12:26:23", To: "12:27:00"},
		{From: "12:44:35", To: "12:44:38"},
		{From: "12:46:19", To: "12:46:21"},
		{From: "12:46:30", To: "12:46:40"},
		{From: "12:48:05", To: "12:48:15"},
		{From: "12:49:20", To: "12:49:30"},
		{From: "12:58:23", To: "12:58:30"},
		{From: "12:58:47", To: "12:58:53"},
		{From: "12:59:23", To: "12:59:28"},
		{From: "12:59:37", To: "12:59:41"},
		{From: "13:06:10", To: "13:07:00"},
		{From: "13:14:32", To: "13:14:36"},
		{From: "13:14:53", To: "13:14:58"},
		{From: "13:15:13", To: "13:15:18"},
		{From: "13:31:40"},
	},
	{Group: "treatment", Number: 19}: {
		{From: "15:01:16", To: "15:01:20"},
	},
	{Group: "treatment", Number: 20}: {
		{From: "13:46:20", To: "13:46:37"},
		{From: "13:47:17", To: "13:47:22"},
		{From: "13:49:17", To: "13:49:20"},
		{From: "14:02:49", To: "14:02:51"},
		{From: "14:19:52", To: "14:19:55"},
		{From: "14:20:40", To: "14:20:45"},
		{From: "14:37:18", To: "14:37:20"},
		{From: "14:48:35", To: "14:48:42"},
		{From: "14:59:17", To: "14:59:20"},
		{From: "15:01:42", To: "15:01:44"},
		{From: "15:03:00", To: "15:03:03"},
		{From: "15:04:47", To: "15:04:50"},
		{From: "15:05:38", To: "15:05:41"},
		{From: "15:05:54", To: "15:05:57"},
	},
	{Group: "treatment", Number: 21}: {
		{From: "11:46:08", To: "11:46:11"},
		{From: "11:46:55", To: "11:47:00"},
		{From: "12:53:19", To: "12:53:22"},
	},
	{Group: "treatment", Number: 22}: {
		{To: "12:24:25"},
		{From: "12:25:40", To: "12:25:58"},
		{From: "12:26:28", To: "12:26:33"},
		{From: "12:28:02", To: "12:28:05"},
		{From: "12:28:30", To: "12:28:39"},
		{From: "12:35:24", To: "12:35:28"},
		{From: "12:53:20", To: "12:53:23"},
		{From: "12:53:58", To: "12:54:14"},
		{From: "12:59:50", To: "13:00:22"},
		{From: "13:00:50", To: "13:00:53"},
		{From: "13:03:13", To: "13:03:17"},
		{From: "13:03:43", To: "13:03:47"},
		{From: "13:10:30", To: "13:11:00"},
		{From: "13:12:59", To: "13:13:02"},
		{From: "13:16:00", To: "13:16:55"},
		{From: "13:17:56", To: "13:17:59"},
		{From: "13:21:12", To: "13:21:14"},
		{From: "13:23:28", To: "13:23:50"},
		{From: "13:24:15", To: "13:24:20"},
		{From: "13:28:53", To: "13:29:00"},
		{From: "13:29:10", To: "13:29:15"},
		{From: "13:29:20", To: "13:29:22"},
		{From: "13:29:30", To: "13:29:40"},
		{From: "13:30:00", To: "13:30:05"},
		{From: "13:32:15", To: "13:32:22"},
		{From: "13:33:25", To: "13:33:30"},
		{From: "13:48:19", To: "13:48:22"},
		{From: "13:48:27", To: "13:48:30"},
		{From: "13:48:50", To: "13:48:53"},
		{From: "13:50:27", To: "13:50:30"},
	},
	{Group: "treatment", Number: 23}: {
		{To: "12:40:45"},
		{From: "12:41:05", To: "12:41:10"},
		{From: "12:41:33", To: "12:41:58"},
		{From: "12:42:01", To: "12:42:04"},
		{From: "12:42:12", To: "12:42:15"},
		{From: "12:43:03", To: "12:43:07"},
		{From: "12:46:58", To: "12:47:01"},
		{From: "12:50:15", To: "12:50:17"},
	},
	{Group: "treatment", Number: 24}: {
		{From: "11:19:16", To: "11:19:21"},
		{From: "11:31:17", To: "11:31:20"},
		{From: "11:31:37", To: "11:31:40"},
		{From: "11:32:26", To: "11:32:29"},
		{From: "12:01:15", To: "12:02:20"},
		{From: "12:17:23", To: "12:17:27"},
		{From: "12:21:35", To: "12:21:38"},
		{From: "12:23:02", To: "12:23:05"},
		{From: "12:28:00", To: "12:28:15"},
		{From: "12:30:10", To: "12:30:15"},
		{From: "12:30:35", To: "12:30:40"},
		{From: "12:48:05", To: "12:48:10"},
		{From: "12:57:52", To: "12:57:58"},
	},
	{Group: "treatment", Number: 25}: {
		{To: "10:42:22"},
		{From: "10:42:50", To: "10:42:58"},
		{From: "10:43:23", To: "10:43:28"},
		{From: "10:43:40", To: "10:44:07"},
		{From: "10:45:05", To: "10:45:25"},
		{From: "10:45:40", To: "10:45:55"},
		{From: "10:46:20", To: "10:46:25"},
		{From: "10:46:50", To: "10:47:30"},
		{From: "10:48:10", To: "10:48:40"},
		{From: "10:57:08", To: "10:57:13"},
		{From: "10:57:30", To: "10:57:35"},
		{From: "11:17:20", To: "11:17:55"},
		{From: "11:26:30", To: "11:26:36"},
		{From: "11:31:43", To: "11:31:48"},
		{From: "12:01:10", To: "12:01:15"},
		{From: "12:02:11", To: "12:02:14"},
	},
	{Group: "treatment", Number: 26}: {
		{To: "11:14:30"},
		{From: "11:23:25", To: "11:24:10"},
		{From: "11:26:45", To: "11:27:10"},
		{From: "11:27:30", To: "11:27:45"},
		{From: "11:29:30", To: "11:32:10"},
		{From: "11:32:51", To: "11:32:55"},
		{From: "11:36:40", To: "11:36:55"},
		{From: "11:37:08", To: "11:37:45"},
		{From: "11:38:15", To: "11:38:40"},
		{From: "11:43:40", To: "11:43:57"},
		{From: "11:45:18", To: "11:45:24"},
		{From: "11:52:00", To: "11:52:30"},
		{From: "11:52:52", To: "11:53:00"},
		{From: "11:53:30", To: "11:53:32"},
		{From: "11:53:47", To: "11:53:50"},
		{From: "12:11:25", To: "12:11:35"},
		{From: "12:12:00", To: "12:12:08"},
		{From: "12:13:00", To: "12:13:20"},
		{From: "12:15:45", To: "12:16:00"},
		{From: "12:24:15", To: "12:24:27"},
		{From: "12:36:25", To: "12:36:40"},
		{From: "12:37:20", To: "12:38:00"},
		{From: "12:43:27", To: "12:43:31"},
		{From: "12:44:16", To: "12:44:18"},
		{From: "12:44:23", To: "12:44:27"},
		{From: "12:45:50", To: "12:45:53"},
		{From: "12:46:20", To: "12:46:28"},
		{From: "12:53:00", To: "12:53:28"},
		{From: "12:53:55", To: "12:55:10"},
		{From: "12:56:00", To: "12:56:05"},
		{From: "12:57:05", To: "12:57:45"},
		{From: "13:06:05", To: "13:06:20"},
		{From: "13:07:00", To: "13:07:25"},
	},
	{Group: "treatment", Number: 27}: {
		{To: "11:30:27"},
		{From: "11:31:45", To: "11:31:50"},
		{From: "12:00:00", To: "12:00:30"},
		{From: "12:00:50", To: "12:01:05"},
		{From: "12:01:27", To: "12:01:29"},
		{From: "12:21:22", To: "12:21:27"},
		{From: "12:40:58", To: "12:41:02"},
		{From: "12:41:37", To: "12:41:40"},
		{From: "13:12:00", To: "13:12:22"},
		{From: "13:12:40", To: "13:12:45"},
		{From: "13:12:50", To: "13:12:57"},
	},
	{Group: "treatment", Number: 29}: {
		{To: "12:12:25"},
		{From: "12:12:30", To: "12:12:50"},
		{From: "12:13:17", To: "12:13:30"},
		{From: "12:16:30", To: "12:16:42"},
		{From: "13:05:30", To: "13:05:38"},
		{From: "13:33:30", To: "13:33:35"},
		{From: "13:43:30", To: "13:43:39"},
	},
	{Group: "treatment", Number: 31}: {
		{To: "09:12:25"},
		{From: "09:13:13", To: "09:13:43"},
		{From: "09:13:52", To: "09:14:15"},
		{From: "09:17:07", To: "09:17:13"},
		{From: "09:18:23", To: "09:18:28"},
		{From: "09:18:47", To: "09:18:50"},
		{From: "09:19:35", To: "09:19:42"},
		{From: "09:27:10", To: "09:27:55"},
		{From: "09:29:40", To: "09:29:45"},
		{From: "09:30:10", To: "09:30:15"},
		{From: "09:30:35", To: "09:30:40"},
		{From: "09:30:55", To: "09:31:15"},
		{From: "09:36:05", To: "09:36:10"},
		{From: "10:06:05", To: "10:06:08"},
		{From: "10:06:43", To: "10:06:47"},
		{From: "10:10:32", To: "10:10:37"},
		{From: "10:24:40", To: "10:24:45"},
		{From: "10:26:10", To: "10:26:12"},
	},
	{Group: "treatment", Number: 32}: {
		{To: "09:24:45"},
		{From: "09:45:57", To: "09:45:58"},
		{From: "10:00:12", To: "10:00:19"},
		{From: "10:03:29", To: "10:03:30"},
		{From: "10:35:17", To: "10:35:19"},
	},
	{Group: "treatment", Number: 33}: {
		{To: "11:46:05"},
		{From: "11:58:48", To: "11:59:12"},
	},
	{Group: "treatment", Number: 36}: {
		{To: "10:31:28"},
		{From: "10:37:50", To: "10:38:20"},
		{From: "10:54:35", To: "10:55:05"},
		{From: "10:58:11", To: "10:58:41"},
		{From: "11:00:00", To: "11:00:45"},
		{From: "11:02:07", To: "11:03:00"},
		{From: "11:03:22", To: "11:03:25"},
		{From: "11:06:40", To: "11:06:50"},
		{From: "11:07:04", To: "11:07:07"},
		{From: "11:29:30", To: "11:29:50"},
		{From: "11:46:04", To: "11:46:07"},
		{From: "11:46:50", To: "11:46:53"},
		{From: "11:47:10", To: "11:47:15"},
		{From: "11:47:32", To: "11:47:35"},
		{From: "11:47:42", To: "11:47:54"},
		{From: "11:49:23", To: "11:49:27"},
		{From: "11:49:33", To: "11:49:36"},
		{From: "11:49:52", To: "11:49:58"},
	},
	{Group: "treatment", Number: 37}: {
		{To: "10:37:45"},
		{From: "10:38:13", To: "10:38:17"},
		{From: "10:38:28", To: "10:38:32"},
		{From: "10:38:45", To: "10:39:50"},
		{From: "10:40:00", To: "10:40:05"},
		{From: "10:41:03", To: "10:41:45"},
		{From: "10:41:58", To: "10:42:03"},
		{From: "10:42:28", To: "10:48:45"},
		{From: "10:51:20", To: "10:51:40"},
		{From: "10:57:20", To: "10:57:40"},
		{From: "11:10:19", To: "11:10:21"},
		{From: "11:13:16", To: "11:13:20"},
		{From: "11:18:58", To: "11:18:59"},
		{From: "11:19:37", To: "11:19:39"},
		{From: "11:20:28", To: "11:20:35"},
		{From: "11:39:16", To: "11:39:17"},
	},
	{Group: "treatment", Number: 38}: {
		{To: "10:50:40"},
		{From: "10:51:40", To: "10:51:50"},
		{From: "10:54:15", To: "10:54:22"},
		{From: "10:55:18", To: "10:55:25"},
		{From: "10:55:28", To: "10:55:40"},
		{From: "10:56:17", To: "10:56:28"},
		{From: "10:56:47", To: "10:57:24"},
		{From: "11:00:12", To: "11:00:30"},
		{From: "11:01:15", To: "11:01:20"},
		{From: "11:04:00", To: "11:04:05"},
		{From: "11:04:20", To: "11:04:27"},
		{From: "11:04:32", To: "11:04:38"},
		{From: "11:07:00", To: "11:07:20"},
		{From: "11:09:09", To: "11:09:10"},
		{From: "11:09:40", To: "11:10:00"},
		{From: "11:10:20", To: "11:10:45"},
		{From: "11:12:40", To: "11:13:00"},
		{From: "11:15:00", To: "11:15:07"},
		{From: "11:16:45", To: "11:16:58"},
		{From: "11:17:10", To: "11:17:45"},
		{From: "11:19:05", To: "11:19:17"},
		{From: "11:20:16", To: "11:20:18"},
		{From: "11:21:30", To: "11:21:35"},
		{From: "11:21:40", To: "11:21:45"},
		{From: "11:22:20", To: "11:22:25"},
		{From: "11:22:50", To: "11:22:55"},
		{From: "11:33:26", To: "11:33:27"},
		{From: "12:12:41", To: "12:12:47"},
	},
	{Group: "treatment", Number: 39}: {
		{To: "09:50:00"},
		{From: "09:51:10", To: "09:51:20"},
		{From: "09:51:45", To: "09:52:00"},
		{From: "09:53:30", To: "09:53:35"},
		{From: "09:54:18", To: "09:54:23"},
		{From: "10:01:46", To: "10:01:58"},
		{From: "10:24:32", To: "10:24:42"},
		{From: "10:26:54", To: "10:26:57"},
		{From: "10:42:40", To: "10:42:42"},
		{From: "11:18:32", To: "11:18:34"},
		{From: "11:20:00", To: "11:20:05"},
	},
	{Group: "treatment", Number: 40}: {
		{To: "10:01:07"},
		{From: "10:01:40", To: "10:01:50"},
		{From: "10:02:10", To: "10:02:30"},
		{From: "10:06:05", To: "10:06:10"},
		{From: "10:06:50", To: "10:06:53"},
		{From: "10:12:20", To: "10:12:30"},
		{From: "10:12:39", To: "10:12:54"},
		{From: "10:21:14", To: "10:21:17"},
		{From: "10:24:52", To: "10:24:54"},
		{From: "10:28:35", To: "10:28:36"},
		{From: "10:30:30", To: "10:30:47"},
		{From: "10:34:15", To: "10:34:18"},
		{From: "10:37:20", To: "10:37:23"},
		{From: "10:38:54", To: "10:38:55"},
		{From: "10:55:28", To: "10:55:34"},
		{From: "10:56:34", To: "10:56:36"},
		{From: "10:57:05", To: "10:57:08"},
		{From: "11:07:22", To: "11:07:25"},
		{From: "11:12:31", To: "11:12:33"},
		{From: "11:24:16", To: "11:24:19"},
	},
	{Group: "treatment", Number: 41}: {
		{To: "10:06:12"},
		{From: "10:06:45", To: "10:06:55"},
		{From: "10:07:35", To: "10:07:45"},
		{From: "10:08:02", To: "10:08:10"},
		{From: "10:08:47", To: "10:11:07"},
		{From: "10:12:00", To: "10:12:10"},
		{From: "10:12:40", To: "10:12:47"},
		{From: "10:13:05", To: "10:13:12"},
		{From: "10:14:07", To: "10:14:12"},
		{From: "10:23:55", To: "10:24:20"},
		{From: "10:24:47", To: "10:25:00"},
		{From: "10:25:17", To: "10:25:27"},
		{From: "10:25:53", To: "10:26:05"},
		{From: "10:26:17", To: "10:26:25"},
		{From: "10:26:50", To: "10:27:00"},
		{From: "10:30:05", To: "10:30:25"},
		{From: "10:35:50", To: "10:36:15"},
		{From: "10:38:15", To: "10:38:30"},
		{From: "10:39:36", To: "10:39:40"},
		{From: "10:44:00", To: "10:48:00"},
		{From: "10:50:00", To: "10:50:20"},
	},
	{Group: "treatment", Number: 42}: {
		{From: "10:02:55", To: "10:03:02"},
		{From: "10:03:36", To: "10:03:40"},
		{From: "10:04:10", To: "10:04:17"},
		{From: "10:11:45", To: "10:11:58"},
		{From: "10:21:06", To: "10:21:08"},
		{From: "10:46:33", To: "10:46:35"},
		{From: "10:58:14", To: "10:58:18"},
		{From: "10:58:38", To: "10:58:40"},
		{From: "11:07:24", To: "11:07:28"},
		{From: "11:24:42", To: "11:24:47"},
	},
}

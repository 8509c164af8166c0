package scan

// Curated TCP service assignments. Regenerate from the IANA registry
// with tools/update-ports.go.
var wellKnownServices = map[int]string{
	7:     "echo",
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	43:    "whois",
	53:    "domain",
	69:    "tftp",
	79:    "finger",
	80:    "http",
	88:    "kerberos",
	110:   "pop3",
	111:   "rpcbind",
	119:   "nntp",
	123:   "ntp",
	135:   "msrpc",
	137:   "netbios-ns",
	139:   "netbios-ssn",
	143:   "imap",
	161:   "snmp",
	179:   "bgp",
	194:   "irc",
	389:   "ldap",
	443:   "https",
	445:   "microsoft-ds",
	465:   "smtps",
	514:   "syslog",
	515:   "printer",
	548:   "afp",
	554:   "rtsp",
	587:   "submission",
	631:   "ipp",
	636:   "ldaps",
	873:   "rsync",
	902:   "vmware-auth",
	989:   "ftps-data",
	990:   "ftps",
	993:   "imaps",
	995:   "pop3s",
	1080:  "socks",
	1194:  "openvpn",
	1433:  "ms-sql-s",
	1434:  "ms-sql-m",
	1521:  "oracle",
	1723:  "pptp",
	2049:  "nfs",
	2181:  "zookeeper",
	2375:  "docker",
	2376:  "docker-s",
	3128:  "squid",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	4369:  "epmd",
	5060:  "sip",
	5222:  "xmpp-client",
	5269:  "xmpp-server",
	5432:  "postgresql",
	5672:  "amqp",
	5900:  "vnc",
	5984:  "couchdb",
	6000:  "x11",
	6379:  "redis",
	6443:  "kube-apiserver",
	6667:  "irc",
	8000:  "http-alt",
	8080:  "http-proxy",
	8443:  "https-alt",
	9092:  "kafka",
	9200:  "elasticsearch",
	9418:  "git",
	11211: "memcached",
	27017: "mongodb",
	50000: "db2",
}

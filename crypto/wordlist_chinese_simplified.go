package crypto

// chineseSimplifiedWordlist is the standard BIP39 Chinese (simplified) wordlist (2048 entries, sorted lexicographically).
var chineseSimplifiedWordlist = []string{
	"一", "一般", "七", "万", "三", "上", "下", "下巴",
	"不", "与", "丑", "专", "专家", "且", "世", "丘",
	"丘陵", "丙", "业", "东", "丝", "两", "严", "严冬",
	"个", "中", "中子", "中年", "中秋", "丰", "串", "临",
	"丹", "为", "主", "主人", "主板", "主管", "主角", "举",
	"乃", "久", "么", "义", "义工", "之", "乌", "乌龟",
	"乎", "乏", "乐", "乐观", "乒乓球", "乔", "乘", "乙",
	"九", "也", "习", "乡", "乡村", "书", "书房", "书架",
	"书籍", "买", "乱", "乳", "了", "争", "争论", "事",
	"二", "于", "亏", "云", "云端", "互", "五", "井",
	"亚", "些", "交", "交易", "产", "产品", "京", "亮",
	"亲", "亲戚", "人", "人类", "什", "仁", "仅", "仆",
	"仆人", "今", "介", "仍", "从", "仓库", "他", "仙",
	"代", "代码", "令", "以", "仪", "们", "仰", "件",
	"价", "价格", "任", "任务", "份", "企", "企业", "企鹅",
	"伊", "伏兵", "休眠", "众", "优", "伙伴", "会", "会计",
	"会议", "伟", "传", "传感器", "传染病", "传真", "伤", "伤员",
	"伯", "伸", "似", "但", "位", "低", "住", "体",
	"体积", "体育", "何", "余", "佛寺", "作", "作业", "作家",
	"作者", "你", "使", "例", "供", "依", "侧", "侵",
	"便", "促", "俊", "俘获", "俘虏", "保", "保姆", "保存",
	"保安", "保洁", "保险", "信", "信件", "信号", "修", "倍",
	"倒", "候", "借", "债券", "值", "假", "假期", "假设",
	"偏见", "做", "停", "停战", "健身", "儿", "儿童", "元",
	"元宵", "元旦", "元素周期表", "兄弟", "充", "充电器", "先", "光",
	"光盘", "光线", "克", "免", "免疫", "兔子", "党", "入",
	"入学", "全", "八", "公", "公交车", "公司", "公园", "公寓",
	"公平", "公式", "公路", "公鸡", "六", "兰", "共", "关",
	"关机", "关税", "关闭", "兴", "兵", "其", "具", "养",
	"内", "内存", "内衣", "册", "再", "冒", "写", "军",
	"军号", "军旗", "军营", "农", "冬季", "冬瓜", "冰", "冰箱",
	"冲", "冲浪", "决", "况", "冷", "准", "凉", "减",
	"凝", "几", "凡", "凡人", "凯", "出", "出口", "击",
	"函", "函数", "函数库", "刀", "分", "分子", "分析法", "切",
	"刑", "划", "列", "刘", "则", "刚", "创", "初",
	"初春", "删除", "判", "利", "利润", "别", "别墅", "到",
	"制", "制度", "制片人", "刹车", "刺猬", "刻", "剂", "前",
	"剧", "剩", "剪刀", "剪切", "剪辑师", "副", "力", "力量",
	"办", "功", "功率", "加", "加速度", "务", "动", "助",
	"努", "劳", "势", "勇敢", "勉", "勤奋", "包", "包围",
	"包子", "包装", "化", "化合物", "化妆师", "化学", "北", "匹",
	"区", "医", "医生", "医院", "十", "千", "升", "升级",
	"半", "半岛", "华", "协", "协议", "单", "单位", "单词",
	"卖", "南", "南瓜", "博客", "占", "卡", "卧室", "卫",
	"卫生间", "印", "危", "即", "却", "卷", "厂", "历",
	"历史", "厉", "压", "压强", "压缩包", "厌恶", "厚", "原",
	"原因", "原始人", "原子核", "原料", "厨师", "厨房", "厨房长", "去",
	"县", "参", "又", "及", "友", "双", "反", "反击",
	"反派", "反驳", "发", "发动机", "发展", "叔", "取", "受",
	"受助者", "变", "变化", "口", "古", "古人", "句", "句子",
	"另", "只", "叫", "召", "可", "台", "台风", "史",
	"右", "叶", "号", "司", "司机", "叹", "吃", "各",
	"合", "合伙人", "合同", "同", "同事", "同学", "名", "后",
	"后视镜", "向", "吗", "吞吐量", "否", "吧", "含", "听",
	"听众", "启动", "吸", "呀", "呆", "呈", "告", "员",
	"员工", "呢", "周", "周年", "味", "呵", "呼", "命",
	"和", "咨询", "咸", "品", "哈", "响", "哥", "哨兵",
	"哪", "哭", "哲学", "唇", "唤醒", "唯", "唱", "商",
	"商店", "啊", "啦", "善", "善良", "喉咙", "喊", "喜",
	"喜鹊", "喝", "嘴巴", "器", "四", "回", "因", "团",
	"团队", "困", "困难", "围", "围巾", "围棋", "固", "固体",
	"国", "国庆", "国王", "图", "图标", "图案", "图表", "圆",
	"土", "土豆", "圣人", "在", "地", "地下室", "地球", "地理",
	"地铁", "地震", "场", "均", "坏", "坐", "坐标", "块",
	"坚", "坚强", "坝", "坡", "坦", "垂", "型", "垫",
	"城", "城堡", "城墙", "城市", "城门", "域", "培", "培训",
	"基", "基因", "基金", "堂", "堆", "堡", "塔", "塞",
	"境", "增", "增长", "壁", "壤", "士", "士兵", "声",
	"声卡", "声音", "处", "处理器", "备", "备份", "复", "复制",
	"复杂", "夏", "夏季", "外", "外套", "外星人", "多", "多云",
	"夜", "够", "大", "大楼", "大腿", "大臣", "大蒜", "大豆",
	"大象", "天", "天使", "太", "太阳", "夫", "夫妻", "央",
	"失", "失利", "失衡", "失败", "头", "头盔", "夺", "奇",
	"奇袭", "奉", "奏", "奔", "奖励", "奖学金", "套", "奥",
	"女", "奶", "奶牛", "她", "好", "如", "妈", "妖怪",
	"妙", "妹", "姆", "始", "姐", "姐妹", "委", "姿",
	"威", "娘", "婚", "婚礼", "婴儿", "子", "子女", "孔",
	"孔雀", "字", "字母", "存", "存款", "孙", "孟", "季",
	"季节", "学", "学校", "学生", "孩", "宁", "它", "宇宙",
	"守", "安", "安全", "安装包", "完", "宗", "宗教", "官",
	"官员", "宙", "定", "定理", "宜", "实", "实验", "审",
	"客", "客人", "客厅", "客户端", "宣", "室", "宪", "宫殿",
	"宰", "害", "家", "家具", "家族", "家长", "容", "容易",
	"宽", "宽容", "宽度", "宾馆", "寄", "寄生虫", "密", "密度",
	"密码", "富", "寒", "寒流", "察", "寨", "对", "对手",
	"寻", "导", "导演", "封", "射", "射箭", "将", "将军",
	"小", "小区", "小腿", "小说", "小麦", "少", "少年", "尔",
	"就", "尺子", "尼", "尽", "尾", "局", "层", "居",
	"屋", "屋顶", "屏", "展", "属", "屡", "山", "山脉",
	"岁", "岗", "岛", "岛屿", "岩", "峡", "峡谷", "峰",
	"崇", "崔", "川", "州", "巡", "工", "工具栏", "工厂",
	"工程师", "工程师助理", "左", "差", "已", "巴", "市", "市场",
	"布", "布局", "师", "希", "希望", "帐", "帝", "带",
	"带宽", "席", "帮", "常", "帽", "帽子", "幅", "干",
	"干旱", "平", "平原", "平衡", "年", "年糕", "并", "并发",
	"幻", "幽灵", "广", "广场", "广播", "庄", "庆", "床",
	"床铺", "序", "库", "库存", "应", "应用程序", "底", "庙宇",
	"府", "度", "度假", "座", "庭", "庭院", "康", "康复",
	"延", "延迟", "建", "建筑", "建筑师", "开", "开关", "开始",
	"异", "弄", "式", "弓箭", "引", "弗", "张", "弥",
	"弦", "弯", "弱", "弹", "强", "归", "当", "录",
	"形", "形状", "彩", "彩虹", "影", "影响", "彻", "彼",
	"往", "征", "径", "待", "待机", "很", "律", "律师",
	"得", "微", "微波炉", "微风", "德", "心", "心理", "心脏",
	"必", "志", "志愿者", "忙", "忧", "快", "快乐", "快递员",
	"念", "忽", "怀", "态", "怎", "怕", "思", "急",
	"急性病", "急躁", "性", "怪", "总", "总统", "恐", "恐惧",
	"恢复", "息", "恳", "恶", "恶棍", "患者", "悦", "悲伤",
	"悲观", "情", "惊讶", "惩罚", "惯", "想", "愁", "意",
	"愚蠢", "感", "愤怒", "愿", "慢", "慢性病", "慰", "懒惰",
	"戏剧", "成", "成交", "成功", "成本", "成果", "成绩", "我",
	"戒指", "或", "战", "战利品", "战场", "战役", "战术", "战甲",
	"战略", "战船", "战车", "战马", "户", "房", "房屋", "所",
	"手", "手套", "手指", "手术", "手机", "手电筒", "手腕", "手臂",
	"手表", "手镯", "才", "扑克", "打", "打印机", "打开", "打猎",
	"扔", "扣", "执", "扩", "扫描仪", "扬", "批", "找",
	"承", "技", "技术员", "把", "抓", "投", "投资", "投降",
	"抗", "抗体", "折", "抢", "护", "护士", "报", "报告",
	"报纸", "报表", "抱", "抵", "担", "拉", "拖", "招生",
	"拜", "择", "括", "拼图", "拿", "持", "指", "指挥",
	"指甲", "按", "按摩师", "按钮", "挖", "挡", "挥", "振",
	"振幅", "捐赠者", "损", "换", "据", "掉", "掌", "排",
	"排球", "探", "接", "接口", "控", "推", "推论", "措",
	"提", "插件", "插座", "握", "援军", "搜", "搞", "摄像头",
	"摄影", "摄影师", "摆", "摩托车", "摸", "撤退", "播", "操",
	"操作系统", "擦", "攀", "支", "支出", "收", "收入", "收银员",
	"改", "攻", "放", "政", "政治", "政策", "故", "效",
	"敌", "敌人", "敌军", "教", "教堂", "教师", "教练", "教育",
	"敢", "散", "散文", "散热器", "敬", "数", "数学", "数据",
	"数据库", "整", "文", "文件夹", "文化", "文字", "文章", "斑马",
	"斗", "料", "斜", "斤", "断", "斯", "新", "新闻",
	"方", "方向盘", "方案", "方程", "施", "旅游", "旅行", "旋",
	"族", "族谱", "旗", "无", "既", "日", "旧", "早",
	"时", "时尚", "旺", "昂", "昆", "明", "明信片", "昏",
	"易", "星", "星星", "星球", "映", "春", "春节", "昨",
	"是", "显", "显卡", "显示器", "晋", "晒", "晚", "晚辈",
	"晨", "普", "普通", "景", "晴", "晴天", "晶", "晶体",
	"暗", "暴雨", "曲", "曲线", "更", "更新", "曹", "曾",
	"最", "月", "月亮", "月饼", "有", "朋友", "服", "服务员",
	"服务器", "望", "朝", "期", "期刊", "期货", "木", "木瓜",
	"木马", "未", "未来人", "末", "本", "本地", "术", "朴",
	"机", "机器人", "机场", "机构", "机箱", "杀", "杀毒软件", "杂",
	"杂志", "权", "权威", "权限", "杆", "李", "材", "村",
	"杜", "束", "束缚", "条", "条例", "来", "杨", "杯",
	"松", "松鼠", "板", "极", "构", "析", "林", "果",
	"枝", "枪", "架", "某", "染", "染色体", "柠檬", "查",
	"柿子", "标", "标本", "标签页", "树", "校", "校友", "校长",
	"样", "样本", "核", "核桃", "根", "格", "桃子", "框架",
	"案", "桌子", "桌游", "桥梁", "梁", "梨子", "械", "检",
	"棉", "棋牌", "森林", "椅子", "植", "椰子", "楼梯", "概",
	"模", "模型", "横", "樱桃", "橙子", "橡皮", "次", "欢",
	"欣", "欧", "款", "歌", "歌手", "止", "正", "正义",
	"此", "步", "武", "死", "残", "殖", "段", "段落",
	"毁", "母", "母鸡", "每", "毒", "比", "毕", "毕业",
	"毛", "毛发", "毛衣", "毫", "氏族", "民", "民族", "气",
	"气体", "气候", "氢", "氧", "氧化物", "氨基酸", "氯", "氯离子",
	"水", "水牛", "水稻", "永", "求", "汇率", "汉", "江",
	"汤圆", "汪", "汽", "汽车", "沃", "沉", "沙", "沙发",
	"沙漠", "沟", "没", "河", "河流", "河马", "沸点", "油",
	"油箱", "治", "治疗", "沿", "泉", "泊", "法", "法官",
	"法律", "法规", "泡", "波", "波动", "波长", "泥", "注",
	"注册", "泽", "洋", "洋葱", "洗", "洗衣机", "洪水", "洲",
	"活", "派", "流", "流水线", "流量", "测", "测量", "济",
	"浓", "浙", "浩", "浪", "浮", "海", "海峡", "海洋",
	"海湾", "海豚", "浸", "消", "涉", "润", "液", "液体",
	"淀粉", "淡", "深", "深度", "混", "清", "清明", "清洁工",
	"清真寺", "渐", "渡", "温", "温度", "温柔", "港口", "游",
	"游泳", "湖", "湖泊", "湾", "湿", "湿度", "源", "源代码",
	"溶", "滑", "滑雪", "滚动条", "满", "漏洞", "演", "演员",
	"演讲", "漫", "潜水", "潮", "激", "激素", "瀑布", "灌",
	"火", "火星", "火车", "灭", "灯", "灰", "灵", "炉",
	"炸", "点", "烂", "烈", "烟", "烧", "热", "烽火",
	"然", "煤", "照", "熊", "熊猫", "熔点", "熟", "燃",
	"燕子", "爬", "爱", "父", "父母", "片", "牙齿", "牛",
	"牛奶", "牛肉", "物", "物理", "特", "特殊", "犀牛", "犯",
	"状", "状态栏", "狐狸", "狗", "独", "狭隘", "狮子", "猎豹",
	"猛", "猪肉", "猫", "献", "猴", "猴子", "猿猴", "率",
	"玉", "玉米", "王", "环", "现", "现代人", "玻", "班",
	"班主任", "球", "理", "理发师", "瑞", "瓜", "瓦", "甚",
	"生", "生姜", "生日", "生物", "用", "用户名", "田", "由",
	"甲", "电", "电压", "电场", "电子", "电影", "电报", "电池",
	"电流", "电源", "电灯", "电竞", "电脑", "电视", "电视台", "电路",
	"电阻", "画", "画家", "界", "留", "略", "番茄", "疏",
	"疫苗", "疲", "病", "病人", "病患", "病毒", "病毒程序", "痕",
	"痛", "瘦", "登山", "登录", "白", "白菜", "百", "的",
	"皇", "皇帝", "皮", "皮肤", "盆", "盆地", "益", "盐",
	"盐酸", "盖", "盗", "盘", "盟", "盟军", "目", "目标",
	"直", "相", "相机", "盼", "盾", "盾牌", "省", "看",
	"真", "真理", "真菌", "眼", "眼睛", "眼镜", "着", "督",
	"矛", "知", "短", "短信", "矮", "石", "石榴", "矿",
	"矿物质", "码头", "研", "破", "础", "硫", "硫酸", "硬",
	"硬盘", "确", "碎", "碰", "碱", "碳", "碳水化合物", "碳酸",
	"磁", "磁场", "磷", "示", "社", "社交媒体", "社会", "社区",
	"祖", "祖先", "神", "神仙", "神坛", "神经", "祠堂", "祸",
	"福", "离", "私", "秋", "秋季", "种", "种族", "科",
	"科学", "科学家", "积", "称", "移", "稀", "程", "程序",
	"程序员", "税", "税收", "稳", "稳定", "稿", "穴", "究",
	"穷", "空", "空调", "穿", "突", "突围", "窗口", "窗帘",
	"立", "站", "竟", "章", "端", "端午", "竹", "笔",
	"符", "第", "等", "等离子体", "筑", "答", "策", "简",
	"简单", "算", "管", "篮球", "米", "米饭", "类", "粉",
	"粒", "粗", "粗暴", "粘贴", "粮", "粽子", "精", "精灵",
	"糕", "糖", "系", "系统", "素", "紧", "繁荣", "纠",
	"红", "红薯", "纤维素", "约", "级", "纪", "纯", "纳",
	"纵", "纷", "纸", "纹理", "线", "线程", "练", "组",
	"组织", "细", "细胞", "细菌", "织", "终", "终端", "绍",
	"经", "经济", "经理", "结", "结束", "结构", "结果", "绕",
	"绘画", "给", "绝", "绝望", "统", "统帅", "统计", "继",
	"续", "维", "维修工", "维生素", "绵", "绿", "缓存", "编",
	"编者", "编辑", "缝", "缩", "缴获", "缸", "缺", "网卡",
	"网球", "网站", "网络", "罗", "罪", "置", "羊", "羊肉",
	"美", "美容师", "羞愧", "群", "羽毛球", "翻", "耀", "老",
	"老师", "老年", "老板", "老虎", "考", "考试", "者", "而",
	"耐", "耐心", "耗", "耳朵", "耳机", "耳环", "耻辱", "职",
	"职员", "联", "联军", "聚", "聪明", "肉", "肌肉", "肝",
	"肝脏", "肠道", "股东", "股票", "肥", "肩", "肩膀", "育",
	"肺部", "肾脏", "胃部", "胆", "胆怯", "背", "背包", "胜",
	"胜利", "胞", "胡", "胡椒", "胶", "胶原蛋白", "胶水", "胸",
	"能", "能量", "脂", "脂肪酸", "脆弱", "脊椎", "脏", "脑",
	"脖子", "脚", "脚本", "脚趾", "脚踝", "脱", "脸", "腰",
	"腰带", "自", "自由", "自行车", "自负", "至", "致", "舌头",
	"舞蹈", "航", "般", "舱", "船", "良", "色", "艺",
	"艺术", "节", "芒果", "芝麻", "芯片", "花", "花园", "花生",
	"花艺师", "芳", "芹菜", "芽", "苏", "苗", "若", "苦",
	"英", "英雄", "苹果", "范", "茄子", "茶", "茶艺师", "草",
	"草原", "草莓", "荒", "荡", "荣誉", "药", "药物", "荷",
	"获", "菌", "菜", "菜单", "菠菜", "菠萝", "萌", "萝卜",
	"营", "萧条", "落", "葛", "葡萄", "葡萄糖", "董事", "葬礼",
	"蒂", "蒙", "蒸", "蓝", "薄", "薪", "藏", "蘑菇",
	"虑", "虚伪", "虫", "虽", "蚂蚁", "蛇类", "蛋", "蛋白质",
	"蜂蜜", "蜜蜂", "蜻蜓", "蝴蝶", "血", "血管", "行", "街道",
	"衡", "衣", "衣服", "衣柜", "补", "补丁", "表", "衬衫",
	"衰", "衰退", "袁", "袋", "袋鼠", "袜子", "被", "裁",
	"裁判", "裂", "装", "装置", "裕", "裙子", "裤子", "西",
	"西瓜", "要", "见", "观", "观众", "观察员", "观测", "规",
	"规则", "视", "觉", "角", "解", "触", "言", "警察",
	"计", "计划", "计算", "订书机", "认", "讨", "讨论", "让",
	"训", "议", "记", "记者", "讲", "讲座", "许", "论",
	"论坛", "设", "设备", "设计", "设计师", "访", "证", "证券",
	"证明", "评", "识", "诉", "诊断", "译者", "试", "诗",
	"诗人", "诗歌", "诚实", "话", "该", "语", "语言", "误",
	"说", "请", "诺", "读", "读者", "课", "课本", "谁",
	"调", "调酒师", "谈", "谈判", "谊", "谋", "谎言", "谓",
	"谢", "谦虚", "豆角", "象", "象棋", "豹子", "负", "负载",
	"贡", "财", "责", "账号", "货", "货币", "质", "质子",
	"质量", "贫", "贵", "贷款", "贸易", "费", "资", "赏",
	"赔", "赔款", "赛", "走", "走廊", "赵", "赶", "起",
	"超", "超市", "越", "足", "足球", "跑", "跑步", "距",
	"跟", "跨", "路", "路人", "路由器", "跳", "践", "踪",
	"身", "躺", "车", "车灯", "车窗", "车站", "车间", "转",
	"轮", "轮胎", "轮船", "软件", "轴", "轻", "轻症", "载",
	"较", "辅导", "辈", "输", "辛", "辣", "辣椒", "辩论",
	"辱", "边", "达", "迁", "迅", "过", "过敏", "过程",
	"运", "运动", "运动员", "近", "还", "还原", "这", "进",
	"进口", "进程", "远", "连", "迫", "述", "迹", "退",
	"送", "送货员", "适", "选", "透", "逐", "途", "通",
}
